// Package memory implementa os repositórios de agenda em memória, com as
// mesmas regras de unicidade dos índices do Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository struct {
	mu sync.Mutex

	nextID       uint
	physicians   map[uint]models.Physician
	patients     map[uint]models.Patient
	templates    map[uint]models.WeeklyTemplate
	blocks       map[uint]models.ScheduleBlock
	appointments map[uint]models.Appointment

	// CreateHook roda antes de cada inserção de consulta, fora do mutex.
	CreateHook func(ap *models.Appointment)
}

func New() *Repository {
	return &Repository{
		physicians:   map[uint]models.Physician{},
		patients:     map[uint]models.Patient{},
		templates:    map[uint]models.WeeklyTemplate{},
		blocks:       map[uint]models.ScheduleBlock{},
		appointments: map[uint]models.Appointment{},
	}
}

func (r *Repository) id() uint {
	r.nextID++
	return r.nextID
}

// -------- Seed helpers --------

func (r *Repository) AddPhysician(p models.Physician) models.Physician {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	r.physicians[p.ID] = p
	return p
}

func (r *Repository) AddPatient(p models.Patient) models.Patient {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	r.patients[p.ID] = p
	return p
}

// ActiveAt conta consultas não canceladas em um horário.
func (r *Repository) ActiveAt(physicianID uint, date, t string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ap := range r.appointments {
		if ap.PhysicianID == physicianID && ap.Date == date && ap.Time == t && ap.Status != string(domain.StatusCancelled) {
			n++
		}
	}
	return n
}

func (r *Repository) AppointmentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments)
}

// -------- Availability --------

func (r *Repository) ActiveTemplate(_ context.Context, physicianID uint, weekday int) (*models.WeeklyTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.templates {
		if t.PhysicianID == physicianID && t.Weekday == weekday && t.Active {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Repository) BlocksOn(_ context.Context, physicianID uint, date string) ([]models.ScheduleBlock, error) {
	return r.blocksWhere(func(b models.ScheduleBlock) bool {
		return b.PhysicianID == physicianID && b.StartDate <= date && b.EndDate >= date
	}), nil
}

func (r *Repository) BookedTimes(_ context.Context, physicianID uint, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, ap := range r.appointments {
		if ap.PhysicianID == physicianID && ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			out = append(out, ap.Time)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *Repository) ActiveTemplates(_ context.Context, physicianID uint) ([]models.WeeklyTemplate, error) {
	return r.templatesWhere(func(t models.WeeklyTemplate) bool {
		return t.PhysicianID == physicianID && t.Active
	}), nil
}

func (r *Repository) BlocksBetween(_ context.Context, physicianID uint, from, to string) ([]models.ScheduleBlock, error) {
	return r.blocksWhere(func(b models.ScheduleBlock) bool {
		return b.PhysicianID == physicianID && b.StartDate <= to && b.EndDate >= from
	}), nil
}

func (r *Repository) BookedBetween(_ context.Context, physicianID uint, from, to string) ([]models.Appointment, error) {
	return r.appointmentsWhere(func(ap models.Appointment) bool {
		return ap.PhysicianID == physicianID && ap.Date >= from && ap.Date <= to &&
			ap.Status != string(domain.StatusCancelled)
	}), nil
}

// -------- Referências --------

func (r *Repository) PhysicianExists(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.physicians[id]
	return ok, nil
}

func (r *Repository) PatientExists(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.patients[id]
	return ok, nil
}

// -------- Appointment --------

func (r *Repository) checkAppointment(ap models.Appointment) error {
	for id, other := range r.appointments {
		if id == ap.ID {
			continue
		}
		if other.Code == ap.Code {
			return domain.ErrDuplicateCode
		}
		if ap.Status != string(domain.StatusCancelled) &&
			other.Status != string(domain.StatusCancelled) &&
			other.PhysicianID == ap.PhysicianID && other.Date == ap.Date && other.Time == ap.Time {
			return domain.ErrSlotTaken
		}
	}
	return nil
}

func (r *Repository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.CreateHook != nil {
		r.CreateHook(ap)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkAppointment(*ap); err != nil {
		return err
	}
	ap.ID = r.id()
	now := time.Now()
	ap.CreatedAt, ap.UpdatedAt = now, now
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *Repository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *Repository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.checkAppointment(*ap); err != nil {
		return err
	}
	ap.UpdatedAt = time.Now()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *Repository) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *Repository) ListAppointments(_ context.Context, f domain.AppointmentFilter) ([]models.Appointment, error) {
	apps := r.appointmentsWhere(func(ap models.Appointment) bool {
		switch {
		case f.DateFrom != "" && ap.Date < f.DateFrom,
			f.DateTo != "" && ap.Date > f.DateTo,
			f.PhysicianID != 0 && ap.PhysicianID != f.PhysicianID,
			f.PatientID != 0 && ap.PatientID != f.PatientID,
			f.Status != "" && ap.Status != f.Status:
			return false
		}
		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range apps {
		if p, ok := r.patients[apps[i].PatientID]; ok {
			apps[i].Patient = &p
		}
		if p, ok := r.physicians[apps[i].PhysicianID]; ok {
			apps[i].Physician = &p
		}
	}
	return apps, nil
}

// -------- Weekly templates --------

func (r *Repository) checkTemplate(t models.WeeklyTemplate) error {
	if !t.Active {
		return nil
	}
	for id, other := range r.templates {
		if id != t.ID && other.Active && other.PhysicianID == t.PhysicianID && other.Weekday == t.Weekday {
			return domain.ErrDuplicateTemplate
		}
	}
	return nil
}

func (r *Repository) CreateTemplate(_ context.Context, t *models.WeeklyTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkTemplate(*t); err != nil {
		return err
	}
	t.ID = r.id()
	r.templates[t.ID] = *t
	return nil
}

func (r *Repository) GetTemplate(_ context.Context, id uint) (*models.WeeklyTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *Repository) ListActiveTemplates(_ context.Context) ([]models.WeeklyTemplate, error) {
	out := r.templatesWhere(func(t models.WeeklyTemplate) bool { return t.Active })

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range out {
		if p, ok := r.physicians[out[i].PhysicianID]; ok {
			out[i].Physician = &p
		}
	}
	return out, nil
}

func (r *Repository) ListTemplatesByPhysician(_ context.Context, physicianID uint, includeInactive bool) ([]models.WeeklyTemplate, error) {
	return r.templatesWhere(func(t models.WeeklyTemplate) bool {
		return t.PhysicianID == physicianID && (includeInactive || t.Active)
	}), nil
}

func (r *Repository) SaveTemplate(_ context.Context, t *models.WeeklyTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.checkTemplate(*t); err != nil {
		return err
	}
	r.templates[t.ID] = *t
	return nil
}

func (r *Repository) DeleteTemplate(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

// -------- Schedule blocks --------

func (r *Repository) CreateBlock(_ context.Context, b *models.ScheduleBlock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	r.blocks[b.ID] = *b
	return nil
}

func (r *Repository) GetBlock(_ context.Context, id uint) (*models.ScheduleBlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blocks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *Repository) ListBlocks(_ context.Context, f domain.BlockFilter) ([]models.ScheduleBlock, error) {
	return r.blocksWhere(func(b models.ScheduleBlock) bool {
		switch {
		case f.PhysicianID != 0 && b.PhysicianID != f.PhysicianID,
			f.From != "" && b.EndDate < f.From,
			f.To != "" && b.StartDate > f.To:
			return false
		}
		return true
	}), nil
}

func (r *Repository) SaveBlock(_ context.Context, b *models.ScheduleBlock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocks[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.blocks[b.ID] = *b
	return nil
}

func (r *Repository) DeleteBlock(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blocks, id)
	return nil
}

// -------- filtros --------

func (r *Repository) templatesWhere(keep func(models.WeeklyTemplate) bool) []models.WeeklyTemplate {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WeeklyTemplate
	for _, t := range r.templates {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PhysicianID != out[j].PhysicianID {
			return out[i].PhysicianID < out[j].PhysicianID
		}
		return out[i].Weekday < out[j].Weekday
	})
	return out
}

func (r *Repository) blocksWhere(keep func(models.ScheduleBlock) bool) []models.ScheduleBlock {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ScheduleBlock
	for _, b := range r.blocks {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *Repository) appointmentsWhere(keep func(models.Appointment) bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// Compile-time check
var (
	_ domain.AppointmentRepository = (*Repository)(nil)
	_ domain.TemplateRepository    = (*Repository)(nil)
	_ domain.BlockRepository       = (*Repository)(nil)
)
