package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

var (
	errPatientNotFound = httperr.NotFoundErr("patient_not_found", "Paciente não encontrado.")
	errDuplicateCPF    = httperr.Conflict("duplicate_cpf", "Já existe um paciente com este CPF.")
)

type PatientHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewPatientHandler(db *gorm.DB, log zerolog.Logger) *PatientHandler {
	return &PatientHandler{db: db, log: log}
}

// --------- Requests ---------

type PatientRequest struct {
	Name      string `json:"nome" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	Phone     string `json:"telefone"`
	Email     string `json:"email" binding:"omitempty,email"`
	BirthDate string `json:"data_nascimento"`
	Address   string `json:"endereco"`
}

// build valida CPF e data de nascimento antes de copiar para o modelo.
func (r PatientRequest) build(p *models.Patient) error {
	cpf, ok := validators.NormalizeCPF(r.CPF)
	if !ok || !validators.IsCPFValid(cpf) {
		return httperr.Validation("cpf", "invalid_cpf", "CPF inválido.")
	}
	if r.BirthDate != "" {
		if _, err := domain.ParseDate("data_nascimento", r.BirthDate); err != nil {
			return err
		}
	}

	p.Name = strings.TrimSpace(r.Name)
	p.CPF = cpf
	p.Phone = strings.TrimSpace(r.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(r.Email))
	p.BirthDate = r.BirthDate
	p.Address = strings.TrimSpace(r.Address)
	return nil
}

// --------- Handlers ---------

func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&patients).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, patients)
}

// Search procura por id exato, trecho do CPF ou trecho do nome.
func (h *PatientHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		httperr.Respond(c, h.log, httperr.Validation("q", "missing_field", "Informe o termo de busca."))
		return
	}

	like := "%" + strings.ToLower(query) + "%"
	q := h.db.WithContext(c.Request.Context()).Model(&models.Patient{})

	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		q = q.Where("id = ? OR cpf LIKE ? OR LOWER(name) LIKE ?", id, like, like)
	} else {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, query)
		if digits != "" {
			q = q.Where("cpf LIKE ? OR LOWER(name) LIKE ?", "%"+digits+"%", like)
		} else {
			q = q.Where("LOWER(name) LIKE ?", like)
		}
	}

	var patients []models.Patient
	if err := q.Order("name ASC").Limit(50).Find(&patients).Error; err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.List(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req PatientRequest
	if !bindJSON(c, &req) {
		return
	}

	var p models.Patient
	if err := req.build(&p); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		httperr.Respond(c, h.log, translatePatientErr(err))
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Paciente cadastrado com sucesso.",
		"id":      p.ID,
	})
}

func (h *PatientHandler) Update(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	var req PatientRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.build(p); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(p).Error; err != nil {
		httperr.Respond(c, h.log, translatePatientErr(err))
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Paciente atualizado com sucesso.",
		"paciente": p,
	})
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Patient{}, id)
	if res.Error != nil {
		httperr.Respond(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.Respond(c, h.log, errPatientNotFound)
		return
	}

	httpresp.Message(c, "Paciente excluído com sucesso.")
}

func (h *PatientHandler) load(c *gin.Context) (*models.Patient, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var p models.Patient
	if err := h.db.WithContext(c.Request.Context()).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = errPatientNotFound
		}
		httperr.Respond(c, h.log, err)
		return nil, false
	}
	return &p, true
}

func translatePatientErr(err error) error {
	if errors.Is(infraRepo.TranslateError(err), domain.ErrDuplicateCPF) {
		return errDuplicateCPF
	}
	return err
}
