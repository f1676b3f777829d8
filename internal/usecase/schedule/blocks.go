package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var errBlockNotFound = httperr.NotFoundErr("block_not_found", "Bloqueio não encontrado.")

// BlockView acrescenta o tipo calculado ao bloqueio.
type BlockView struct {
	models.ScheduleBlock
	Kind string `json:"tipo"`
}

func newBlockView(b models.ScheduleBlock) BlockView {
	return BlockView{ScheduleBlock: b, Kind: domain.BlockKind(b)}
}

type BlockService struct {
	repo  domain.BlockRepository
	audit *audit.Dispatcher
}

func NewBlockService(repo domain.BlockRepository, audit *audit.Dispatcher) *BlockService {
	return &BlockService{repo: repo, audit: audit}
}

func (s *BlockService) List(ctx context.Context, f domain.BlockFilter) ([]BlockView, error) {
	if f.From != "" {
		if _, err := domain.ParseDate("data_inicio", f.From); err != nil {
			return nil, err
		}
	}
	if f.To != "" {
		if _, err := domain.ParseDate("data_fim", f.To); err != nil {
			return nil, err
		}
	}

	blocks, err := s.repo.ListBlocks(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]BlockView, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, newBlockView(b))
	}
	return out, nil
}

func (s *BlockService) Create(ctx context.Context, in domain.BlockInput, userID *uint) (*BlockView, error) {
	b, err := in.Build()
	if err != nil {
		return nil, err
	}

	if ok, err := s.repo.PhysicianExists(ctx, b.PhysicianID); err != nil {
		return nil, err
	} else if !ok {
		return nil, errPhysicianNotFound
	}

	if err := s.repo.CreateBlock(ctx, &b); err != nil {
		return nil, err
	}

	s.dispatch(userID, "block_created", b.ID, domain.BlockKind(b))
	view := newBlockView(b)
	return &view, nil
}

// Update revalida o bloqueio inteiro com as regras de criação.
func (s *BlockService) Update(ctx context.Context, id uint, in domain.BlockInput, userID *uint) (*BlockView, error) {
	current, err := s.repo.GetBlock(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errBlockNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.PhysicianID == 0 {
		in.PhysicianID = current.PhysicianID
	}
	b, err := in.Build()
	if err != nil {
		return nil, err
	}
	if b.PhysicianID != current.PhysicianID {
		if ok, err := s.repo.PhysicianExists(ctx, b.PhysicianID); err != nil {
			return nil, err
		} else if !ok {
			return nil, errPhysicianNotFound
		}
	}
	b.ID = current.ID
	b.CreatedAt = current.CreatedAt

	if err := s.repo.SaveBlock(ctx, &b); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBlockNotFound
		}
		return nil, err
	}

	s.dispatch(userID, "block_updated", b.ID, domain.BlockKind(b))
	view := newBlockView(b)
	return &view, nil
}

func (s *BlockService) Delete(ctx context.Context, id uint, userID *uint) error {
	err := s.repo.DeleteBlock(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return errBlockNotFound
	}
	if err != nil {
		return err
	}

	s.dispatch(userID, "block_deleted", id, "")
	return nil
}

func (s *BlockService) dispatch(userID *uint, action string, id uint, kind string) {
	ev := audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "schedule_block",
		EntityID: &id,
	}
	if kind != "" {
		ev.Metadata = map[string]string{"tipo": kind}
	}
	s.audit.Dispatch(ev)
}
