package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApartmentHandler struct {
	apartmentCommands commands.ApartmentCommands
	apartmentQueries  queries.ApartmentQueries
}

func NewApartmentHandler(
	apartmentCommands commands.ApartmentCommands,
	apartmentQueries queries.ApartmentQueries,
) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentCommands: apartmentCommands,
		apartmentQueries:  apartmentQueries,
	}
}

// @Summary List apartments
// @Description List all apartments in the catalog
// @Tags apartments
// @Produce json
// @Success 200 {array} resdto.ApartmentResponse
// @Router /apartments [get]
func (h *ApartmentHandler) ListApartments(c *gin.Context) {
	apartments, err := h.apartmentQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentList(apartments))
}

// @Summary Get apartment
// @Description Get an apartment with its reservable instances
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.ApartmentDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /apartments/{id} [get]
func (h *ApartmentHandler) GetApartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid apartment ID format",
		})
		return
	}

	detail, err := h.apartmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrApartmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Apartment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromApartmentDetail(detail))
}

// @Summary Create apartment
// @Description Create a new apartment (manager only)
// @Tags apartments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateApartmentRequest true "Apartment request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /apartments [post]
func (h *ApartmentHandler) CreateApartment(c *gin.Context) {
	var req reqdto.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.apartmentCommands.CreateApartment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrApartmentValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid apartment data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Create apartment instance
// @Description Add a reservable instance to an apartment (manager only)
// @Tags apartments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Apartment ID"
// @Param request body reqdto.CreateInstanceRequest true "Instance request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /apartments/{id}/instances [post]
func (h *ApartmentHandler) CreateInstance(c *gin.Context) {
	apartmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid apartment ID format",
		})
		return
	}

	var req reqdto.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.apartmentCommands.CreateInstance(c.Request.Context(), apartmentID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrApartmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Apartment not found",
			})
		case errs.Is(err, commands.ErrApartmentValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid instance data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
