package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
}

func NewAppointmentHandler(appointmentCommands commands.AppointmentCommands) *AppointmentHandler {
	return &AppointmentHandler{appointmentCommands: appointmentCommands}
}

// @Summary Create appointment
// @Description Book a time slot with a professional for a service
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.ValidationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithValidation(c, http.StatusBadRequest, bindErr, validationIssues(bindErr))
		return
	}

	startsAt, err := req.StartsAt()
	if err != nil {
		httperr.AbortWithValidation(c, http.StatusBadRequest, err, []httperr.Issue{
			{Field: "startsAtISO", Message: "must be an ISO-8601 datetime"},
		})
		return
	}

	params := commands.CreateAppointmentParams{
		UserID:         req.UserID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		StartsAt:       startsAt,
	}

	view, err := h.appointmentCommands.CreateAppointment(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrProfessionalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Professional not found")
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found")
		case errors.Is(err, commands.ErrServiceNotOffered):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service is not offered by this professional")
		case errors.Is(err, commands.ErrAppointmentConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is no longer available")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment request")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, httperr.Envelope(resdto.FromAppointmentView(view)))
}

// @Summary Cancel appointment
// @Description Cancel an appointment; cancelling twice is rejected
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format")
		return
	}

	view, err := h.appointmentCommands.CancelAppointment(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Appointment is already cancelled")
		case errors.Is(err, commands.ErrNotCancellable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Appointment cannot be cancelled")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, httperr.Envelope(resdto.FromAppointmentView(view)))
}

// validationIssues flattens gin's binding error into per-field issues.
func validationIssues(err error) []httperr.Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []httperr.Issue{{Field: "body", Message: "Invalid request format"}}
	}

	issues := make([]httperr.Issue, len(verrs))
	for i, fe := range verrs {
		msg := "is invalid"
		if fe.Tag() == "required" {
			msg = "is required"
		}
		issues[i] = httperr.Issue{Field: fe.Field(), Message: msg}
	}
	return issues
}
