package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type InstanceResponse struct {
	ID               uuid.UUID `json:"id"`
	ApartmentID      uuid.UUID `json:"apartmentId"`
	Name             string    `json:"name"`
	MaxGuests        int32     `json:"maxGuests"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	HasCalendar      bool      `json:"hasCalendar"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ApartmentDetailResponse struct {
	ApartmentResponse
	Instances []*InstanceResponse `json:"instances"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromApartmentView(v *queries.ApartmentView) *ApartmentResponse {
	var resp ApartmentResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromApartmentList(items []*queries.ApartmentView) []*ApartmentResponse {
	out := make([]*ApartmentResponse, len(items))
	for i, it := range items {
		out[i] = FromApartmentView(it)
	}
	return out
}

func FromApartmentDetail(v *queries.ApartmentDetailView) *ApartmentDetailResponse {
	resp := ApartmentDetailResponse{
		ApartmentResponse: *FromApartmentView(&v.Apartment),
		Instances:         make([]*InstanceResponse, len(v.Instances)),
	}
	for i, inst := range v.Instances {
		var ir InstanceResponse
		_ = copier.Copy(&ir, inst)
		resp.Instances[i] = &ir
	}
	return &resp
}
