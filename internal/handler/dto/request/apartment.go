package request

type CreateApartmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type CreateInstanceRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	MaxGuests        int     `json:"max_guests" binding:"required,min=1"`
	NightlyRateCents int64   `json:"nightly_rate_cents" binding:"required,min=1"`
	CalendarURL      *string `json:"calendar_url,omitempty"`
}
