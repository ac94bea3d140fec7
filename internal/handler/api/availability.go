package api

import (
	"errors"
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Get availability
// @Description Compute the bookable slots for a professional on a calendar date
// @Tags availability
// @Produce json
// @Param id path string true "Professional ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /professionals/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	professionalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid professional ID format")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing date query parameter"), "Query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		case errors.Is(err, queries.ErrProfessionalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Professional not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, httperr.Envelope(resdto.FromAvailabilityView(view)))
}
