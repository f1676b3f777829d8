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

type BlockHandler struct {
	svc *schedule.BlockService
	log zerolog.Logger
}

func NewBlockHandler(svc *schedule.BlockService, log zerolog.Logger) *BlockHandler {
	return &BlockHandler{svc: svc, log: log}
}

type BlockRequest struct {
	PhysicianID uint    `json:"medico_id"`
	StartDate   string  `json:"data_inicio"`
	EndDate     string  `json:"data_fim"`
	StartTime   *string `json:"horario_inicio"`
	EndTime     *string `json:"horario_fim"`
	Reason      string  `json:"motivo"`
}

func (r BlockRequest) input() domain.BlockInput {
	return domain.BlockInput{
		PhysicianID: r.PhysicianID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Reason:      r.Reason,
	}
}

// List filtra por medico_id e pelo período data_inicio..data_fim.
func (h *BlockHandler) List(c *gin.Context) {
	physicianID, err := queryID(c, "medico_id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out, err := h.svc.List(c.Request.Context(), domain.BlockFilter{
		PhysicianID: physicianID,
		From:        c.Query("data_inicio"),
		To:          c.Query("data_fim"),
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BlockHandler) Create(c *gin.Context) {
	var req BlockRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.svc.Create(c.Request.Context(), req.input(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":  "Bloqueio criado com sucesso.",
		"id":       b.ID,
		"tipo":     b.Kind,
		"bloqueio": b,
	})
}

func (h *BlockHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req BlockRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.svc.Update(c.Request.Context(), id, req.input(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Bloqueio atualizado com sucesso.",
		"bloqueio": b,
	})
}

func (h *BlockHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, "Bloqueio excluído com sucesso.")
}
