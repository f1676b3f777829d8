package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

type auditQuery struct {
	action   string
	entity   string
	entityID uint
	from     *time.Time
	to       *time.Time
	page     int
	limit    int
}

// parseAuditQuery lê filtros e paginação. Datas inválidas são erro; page
// e limit fora da faixa voltam ao padrão.
func parseAuditQuery(c *gin.Context) (auditQuery, error) {
	q := auditQuery{
		action: c.Query("action"),
		entity: c.Query("entity"),
		page:   1,
		limit:  auditDefaultLimit,
	}

	id, err := queryID(c, "entity_id")
	if err != nil {
		return q, err
	}
	q.entityID = id

	if raw := c.Query("from"); raw != "" {
		from, err := domain.ParseDate("from", raw)
		if err != nil {
			return q, err
		}
		q.from = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := domain.ParseDate("to", raw)
		if err != nil {
			return q, err
		}
		end := to.AddDate(0, 0, 1)
		q.to = &end
	}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		q.page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= auditMaxLimit {
		q.limit = l
	}
	return q, nil
}

func (q auditQuery) apply(tx *gorm.DB) *gorm.DB {
	if q.action != "" {
		tx = tx.Where("action = ?", q.action)
	}
	if q.entity != "" {
		tx = tx.Where("entity = ?", q.entity)
	}
	if q.entityID != 0 {
		tx = tx.Where("entity_id = ?", q.entityID)
	}
	if q.from != nil {
		tx = tx.Where("created_at >= ?", *q.from)
	}
	if q.to != nil {
		tx = tx.Where("created_at < ?", *q.to)
	}
	return tx
}

// List pagina o histórico de auditoria, mais recente primeiro.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q, err := parseAuditQuery(c)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	base := q.apply(h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{}))

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	logs := []models.AuditLog{}
	if err := base.
		Order("created_at DESC").
		Limit(q.limit).
		Offset((q.page - 1) * q.limit).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  q.page,
		"limit": q.limit,
		"total": total,
		"logs":  logs,
	})
}
