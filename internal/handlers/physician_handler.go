package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/media"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
)

var (
	errPhysicianNotFound = httperr.NotFoundErr("physician_not_found", "Médico não encontrado.")
	errDuplicateCRM      = httperr.Conflict("duplicate_crm", "Já existe um médico com este CRM.")
)

type PhysicianHandler struct {
	db     *gorm.DB
	photos storage.PhotoStore
	log    zerolog.Logger
}

// NewPhysicianHandler aceita photos nil quando o armazenamento de
// objetos não está configurado.
func NewPhysicianHandler(db *gorm.DB, photos storage.PhotoStore, log zerolog.Logger) *PhysicianHandler {
	return &PhysicianHandler{db: db, photos: photos, log: log}
}

// --------- Requests ---------

type PhysicianRequest struct {
	Name      string `json:"nome" binding:"required"`
	CRM       string `json:"crm" binding:"required"`
	Specialty string `json:"especialidade" binding:"required"`
	Phone     string `json:"telefone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

func (r PhysicianRequest) apply(p *models.Physician) {
	p.Name = strings.TrimSpace(r.Name)
	p.CRM = strings.ToUpper(strings.TrimSpace(r.CRM))
	p.Specialty = strings.TrimSpace(r.Specialty)
	p.Phone = strings.TrimSpace(r.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// --------- Handlers ---------

func (h *PhysicianHandler) List(c *gin.Context) {
	var physicians []models.Physician
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&physicians).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, physicians)
}

func (h *PhysicianHandler) Get(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, p)
}

func (h *PhysicianHandler) Create(c *gin.Context) {
	var req PhysicianRequest
	if !bindJSON(c, &req) {
		return
	}

	var p models.Physician
	req.apply(&p)

	if err := h.db.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		httperr.Respond(c, h.log, translatePhysicianErr(err))
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Médico cadastrado com sucesso.",
		"id":      p.ID,
	})
}

func (h *PhysicianHandler) Update(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	var req PhysicianRequest
	if !bindJSON(c, &req) {
		return
	}
	req.apply(p)

	if err := h.db.WithContext(c.Request.Context()).Save(p).Error; err != nil {
		httperr.Respond(c, h.log, translatePhysicianErr(err))
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Médico atualizado com sucesso.",
		"medico":  p,
	})
}

// Delete remove o médico junto com expedientes e bloqueios. Consultas
// antigas ficam como histórico.
func (h *PhysicianHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Physician{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errPhysicianNotFound
		}
		if err := tx.Where("physician_id = ?", id).Delete(&models.WeeklyTemplate{}).Error; err != nil {
			return err
		}
		return tx.Where("physician_id = ?", id).Delete(&models.ScheduleBlock{}).Error
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Message(c, "Médico excluído com sucesso.")
}

// UploadPhoto recebe o campo multipart "foto", reduz, converte para WebP
// e grava no bucket.
func (h *PhysicianHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		httperr.ServiceUnavailable(c, "storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	p, ok := h.load(c)
	if !ok {
		return
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.Respond(c, h.log, httperr.Validation("foto", "missing_field", "Envie a imagem no campo foto."))
		return
	}
	if file.Size > media.MaxUploadBytes {
		httperr.Respond(c, h.log, httperr.Validation("foto", "file_too_large", "A imagem deve ter no máximo 5 MB."))
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	defer f.Close()

	body, err := media.ToWebP(f, media.MaxSide)
	if errors.Is(err, media.ErrUnsupportedImage) {
		httperr.Respond(c, h.log, httperr.Validation("foto", "unsupported_image", "Formato de imagem não suportado."))
		return
	}
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	key := storage.PhysicianPhotoKey(p.ID, uuid.NewString()[:8])
	url, err := h.photos.Put(c.Request.Context(), key, body, media.ContentType)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(p).
		Update("photo_url", url).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Foto atualizada com sucesso.",
		"foto_url": url,
	})
}

func (h *PhysicianHandler) load(c *gin.Context) (*models.Physician, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var p models.Physician
	if err := h.db.WithContext(c.Request.Context()).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = errPhysicianNotFound
		}
		httperr.Respond(c, h.log, err)
		return nil, false
	}
	return &p, true
}

func translatePhysicianErr(err error) error {
	if errors.Is(infraRepo.TranslateError(err), domain.ErrDuplicateCRM) {
		return errDuplicateCRM
	}
	return err
}
