package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/httpresp"
	"github.com/barberflow/barberflow-api/internal/middleware"
	ucAppointment "github.com/barberflow/barberflow-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	transitionUC *ucAppointment.TransitionAppointment
	listUC       *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	listUC *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		listUC:       listUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	CustomerID     uint   `json:"customer_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID *uint  `json:"professional_id"`
	DateTime       string `json:"date_time" binding:"required"` // RFC 3339
	Notes          string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)
	userID := middleware.UserID(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OrganizationID: organizationID,
		UserID:         userID,
		CustomerID:     req.CustomerID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		DateTime:       req.DateTime,
		Notes:          req.Notes,
	})
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Parâmetro date obrigatório (YYYY-MM-DD).")
		return
	}

	apps, err := h.listUC.Execute(c.Request.Context(), organizationID, dateStr)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.List(c, apps)
}

// UpdateStatus is the single mutation an appointment has after creation:
// confirmed → completed | cancelled.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	organizationID := middleware.OrganizationID(c)
	userID := middleware.UserID(c)

	appointmentID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		organizationID,
		userID,
		appointmentID,
		req.Status,
	)
	if err != nil {
		mapAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func mapAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_time"),
		httperr.IsBusiness(err, "invalid_date"),
		httperr.IsBusiness(err, "invalid_status"),
		httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, err.Error(), "Requisição inválida.")

	case httperr.IsBusiness(err, "appointment_not_found"),
		httperr.IsBusiness(err, "customer_not_found"),
		httperr.IsBusiness(err, "service_not_found"),
		httperr.IsBusiness(err, "professional_not_found"):
		httperr.NotFound(c, err.Error(), "Recurso não encontrado.")

	default:
		httperr.FromDB(c, err, "appointment_not_found")
	}
}
