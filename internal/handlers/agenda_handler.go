package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	freeSlots      *ucAvailability.GetFreeSlots
	availableDates *ucAvailability.GetAvailableDates
	book           *ucAppointment.BookAppointment
	update         *ucAppointment.UpdateAppointment
	cancel         *ucAppointment.CancelAppointment
	remove         *ucAppointment.DeleteAppointment
	list           *ucAppointment.ListAppointments
	log            zerolog.Logger
}

func NewAgendaHandler(
	freeSlots *ucAvailability.GetFreeSlots,
	availableDates *ucAvailability.GetAvailableDates,
	book *ucAppointment.BookAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	log zerolog.Logger,
) *AgendaHandler {
	return &AgendaHandler{
		freeSlots:      freeSlots,
		availableDates: availableDates,
		book:           book,
		update:         update,
		cancel:         cancel,
		remove:         remove,
		list:           list,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientID   uint   `json:"paciente_id"`
	PhysicianID uint   `json:"medico_id"`
	Date        string `json:"data_consulta"`
	Time        string `json:"horario"`
	Notes       string `json:"observacoes"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status"`
	Notes  string `json:"observacoes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AgendaHandler) FreeSlots(c *gin.Context) {
	physicianID, err := queryID(c, "medico_id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	date := c.Query("data")
	if physicianID == 0 || date == "" {
		httperr.Respond(c, h.log, httperr.Validation("medico_id", "missing_field", "medico_id e data são obrigatórios."))
		return
	}

	out, err := h.freeSlots.Execute(c.Request.Context(), physicianID, date)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AgendaHandler) AvailableDates(c *gin.Context) {
	physicianID, err := queryID(c, "medico_id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.availableDates.Execute(
		c.Request.Context(),
		physicianID,
		c.Query("data_inicio"),
		c.Query("data_fim"),
	)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// LIST
// ======================================================

func (h *AgendaHandler) List(c *gin.Context) {
	physicianID, err := queryID(c, "medico_id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	patientID, err := queryID(c, "paciente_id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.list.Execute(c.Request.Context(), domain.AppointmentFilter{
		DateFrom:    c.Query("data_inicio"),
		DateTo:      c.Query("data_fim"),
		PhysicianID: physicianID,
		PatientID:   patientID,
		Status:      c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AgendaHandler) Today(c *gin.Context) {
	physicianID, err := queryID(c, "medico_id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.list.Today(c.Request.Context(), physicianID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// WRITE
// ======================================================

func (h *AgendaHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		PhysicianID: req.PhysicianID,
		PatientID:   req.PatientID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		UserID:      middleware.UserID(c),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":         "Consulta agendada com sucesso.",
		"id":              ap.ID,
		"codigo_consulta": ap.Code,
	})
}

func (h *AgendaHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateInput{
		Status: req.Status,
		Notes:  req.Notes,
		UserID: middleware.UserID(c),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Consulta atualizada com sucesso.",
		"consulta": ap,
	})
}

func (h *AgendaHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Consulta cancelada com sucesso.",
		"consulta": ap,
	})
}

func (h *AgendaHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, "Consulta excluída com sucesso.")
}
