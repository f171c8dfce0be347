package api

import (
	"net/http"
	"strconv"

	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book an apartment instance for a date range
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrApartmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Apartment instance not found",
			})
		case errs.Is(err, commands.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errs.Is(err, commands.ErrPartyTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Party size exceeds instance capacity",
			})
		case errs.Is(err, commands.ErrApartmentNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Apartment is not available for the requested dates",
			})
		case errs.Is(err, commands.ErrCalendarUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "External booking calendar is unavailable, try again later",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID (owner or manager)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	actorID, actorRole, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), actorID, actorRole, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errs.Is(err, queries.ErrReservationAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this reservation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the current user's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations/my [get]
func (h *ReservationHandler) GetMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	after, limit := pageParams(c)

	items, next, err := h.reservationQueries.ListByUser(c.Request.Context(), userID, after, limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items, cursorString(next)))
}

// @Summary List all reservations
// @Description List reservations across all users (manager only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param cursor query string false "Pagination cursor"
// @Success 200 {object} resdto.ManagerReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	after, limit := pageParams(c)

	items, next, err := h.reservationQueries.ListAll(c.Request.Context(), after, limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromManagerReservationList(items, cursorString(next)))
}

// @Summary Reject reservation
// @Description Reject an active reservation (owner or manager)
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest true "Rejection request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) RejectReservation(c *gin.Context) {
	actorID, actorRole, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.reservationCommands.RejectReservation(c.Request.Context(), id, actorID, actorRole, req.Reason)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errs.Is(err, commands.ErrRejectionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to reject this reservation",
			})
		case errs.Is(err, commands.ErrReservationRejected):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already rejected",
			})
		case errs.Is(err, commands.ErrInvalidRejectionReason):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid rejection reason",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func requireActor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	actorID, idOK := middleware.GetUserID(c)
	actorRole, roleOK := middleware.GetUserRole(c)
	if !idOK || !roleOK {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	return actorID, actorRole, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	return after, limit
}

func cursorString(cursor *queries.Cursor) *string {
	if cursor == nil {
		return nil
	}
	return &cursor.After
}
