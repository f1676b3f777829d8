package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	errTemplateNotFound  = httperr.NotFoundErr("template_not_found", "Agenda não encontrada.")
	errDuplicateTemplate = httperr.Conflict("duplicate_template", "Já existe uma agenda ativa para este médico neste dia da semana.")
	errPhysicianNotFound = httperr.NotFoundErr("physician_not_found", "Médico não encontrado.")
)

type TemplateService struct {
	repo  domain.TemplateRepository
	audit *audit.Dispatcher
}

func NewTemplateService(repo domain.TemplateRepository, audit *audit.Dispatcher) *TemplateService {
	return &TemplateService{repo: repo, audit: audit}
}

func (s *TemplateService) ListActive(ctx context.Context) ([]models.WeeklyTemplate, error) {
	return s.repo.ListActiveTemplates(ctx)
}

func (s *TemplateService) ListByPhysician(ctx context.Context, physicianID uint, includeInactive bool) ([]models.WeeklyTemplate, error) {
	return s.repo.ListTemplatesByPhysician(ctx, physicianID, includeInactive)
}

func (s *TemplateService) Create(ctx context.Context, in domain.TemplateInput, userID *uint) (*models.WeeklyTemplate, error) {
	tpl, err := in.Build()
	if err != nil {
		return nil, err
	}

	if ok, err := s.repo.PhysicianExists(ctx, tpl.PhysicianID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errPhysicianNotFound
	}

	if err := s.ensureNoOtherActive(ctx, tpl); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTemplate(ctx, &tpl); err != nil {
		return nil, translateTemplateErr(err)
	}

	s.dispatch(userID, "template_created", tpl.ID)
	return &tpl, nil
}

// Update substitui os campos do expediente. active nil mantém o valor atual.
func (s *TemplateService) Update(ctx context.Context, id uint, in domain.TemplateInput, active *bool, userID *uint) (*models.WeeklyTemplate, error) {
	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.PhysicianID = current.PhysicianID
	tpl, err := in.Build()
	if err != nil {
		return nil, err
	}
	tpl.ID = current.ID
	tpl.CreatedAt = current.CreatedAt
	tpl.Active = current.Active
	if active != nil {
		tpl.Active = *active
	}

	if err := s.ensureNoOtherActive(ctx, tpl); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTemplate(ctx, &tpl); err != nil {
		return nil, translateTemplateErr(err)
	}

	s.dispatch(userID, "template_updated", tpl.ID)
	return &tpl, nil
}

func (s *TemplateService) Deactivate(ctx context.Context, id uint, userID *uint) (*models.WeeklyTemplate, error) {
	tpl, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tpl.Active {
		return tpl, nil
	}

	tpl.Active = false
	if err := s.repo.SaveTemplate(ctx, tpl); err != nil {
		return nil, translateTemplateErr(err)
	}

	s.dispatch(userID, "template_deactivated", tpl.ID)
	return tpl, nil
}

func (s *TemplateService) Delete(ctx context.Context, id uint, userID *uint) error {
	err := s.repo.DeleteTemplate(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return errTemplateNotFound
	}
	if err != nil {
		return err
	}

	s.dispatch(userID, "template_deleted", id)
	return nil
}

func (s *TemplateService) get(ctx context.Context, id uint) (*models.WeeklyTemplate, error) {
	tpl, err := s.repo.GetTemplate(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errTemplateNotFound
	}
	return tpl, err
}

// ensureNoOtherActive antecipa a checagem do índice único para devolver
// uma mensagem clara. O índice continua valendo para corridas.
func (s *TemplateService) ensureNoOtherActive(ctx context.Context, tpl models.WeeklyTemplate) error {
	if !tpl.Active {
		return nil
	}
	other, err := s.repo.ActiveTemplate(ctx, tpl.PhysicianID, tpl.Weekday)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != tpl.ID {
		return errDuplicateTemplate
	}
	return nil
}

func (s *TemplateService) dispatch(userID *uint, action string, id uint) {
	s.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "weekly_template",
		EntityID: &id,
	})
}

func translateTemplateErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateTemplate):
		return errDuplicateTemplate
	case errors.Is(err, domain.ErrNotFound):
		return errTemplateNotFound
	}
	return err
}
