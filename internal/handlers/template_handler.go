package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

type TemplateHandler struct {
	svc *schedule.TemplateService
	log zerolog.Logger
}

func NewTemplateHandler(svc *schedule.TemplateService, log zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: log}
}

type TemplateRequest struct {
	PhysicianID     uint   `json:"medico_id"`
	Weekday         *int   `json:"dia_semana"`
	StartTime       string `json:"horario_inicio"`
	EndTime         string `json:"horario_fim"`
	IntervalMinutes int    `json:"intervalo_minutos"`
	Active          *bool  `json:"ativo"`
}

func (r TemplateRequest) input() domain.TemplateInput {
	return domain.TemplateInput{
		PhysicianID:     r.PhysicianID,
		Weekday:         r.Weekday,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IntervalMinutes: r.IntervalMinutes,
	}
}

func (h *TemplateHandler) ListActive(c *gin.Context) {
	out, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

// ListByPhysician aceita ?todas=true para incluir expedientes desativados.
func (h *TemplateHandler) ListByPhysician(c *gin.Context) {
	physicianID, ok := paramID(c, "medico_id")
	if !ok {
		return
	}

	out, err := h.svc.ListByPhysician(c.Request.Context(), physicianID, c.Query("todas") == "true")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	tpl, err := h.svc.Create(c.Request.Context(), req.input(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Agenda criada com sucesso.",
		"agenda":  tpl,
	})
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req TemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	tpl, err := h.svc.Update(c.Request.Context(), id, req.input(), req.Active, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Agenda atualizada com sucesso.",
		"agenda":  tpl,
	})
}

func (h *TemplateHandler) Deactivate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	tpl, err := h.svc.Deactivate(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Agenda desativada com sucesso.",
		"agenda":  tpl,
	})
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, "Agenda excluída com sucesso.")
}
