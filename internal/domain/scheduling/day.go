package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Day reúne tudo que define a disponibilidade de um médico em uma data.
type Day struct {
	PhysicianID   uint
	Date          string
	Weekday       int
	Template      *models.WeeklyTemplate
	WholeDayBlock *models.ScheduleBlock
	PartialBlocks []models.ScheduleBlock
	Booked        map[Clock]struct{}
}

func NewDay(physicianID uint, date time.Time) *Day {
	return &Day{
		PhysicianID: physicianID,
		Date:        FormatDate(date),
		Weekday:     Weekday(date),
		Booked:      map[Clock]struct{}{},
	}
}

// AddBlocks classifica os bloqueios que cobrem a data do dia e ignora os demais.
func (d *Day) AddBlocks(blocks []models.ScheduleBlock) {
	for i := range blocks {
		b := blocks[i]
		if !CoversDate(b, d.Date) {
			continue
		}
		if IsWholeDay(b) {
			if d.WholeDayBlock == nil {
				d.WholeDayBlock = &b
			}
			continue
		}
		d.PartialBlocks = append(d.PartialBlocks, b)
	}
}

func (d *Day) AddBooked(times ...string) {
	for _, t := range times {
		if c, err := ParseClock(t); err == nil {
			d.Booked[c] = struct{}{}
		}
	}
}

// LoadDay consulta o repositório na ordem expediente, bloqueio de dia
// inteiro, bloqueios parciais e horários ocupados, parando cedo quando o
// resultado já está decidido.
func LoadDay(ctx context.Context, r AvailabilityReader, physicianID uint, date string) (*Day, error) {
	parsed, err := ParseDate("data", date)
	if err != nil {
		return nil, err
	}
	day := NewDay(physicianID, parsed)

	tpl, err := r.ActiveTemplate(ctx, physicianID, day.Weekday)
	if errors.Is(err, ErrNotFound) {
		return day, nil
	}
	if err != nil {
		return nil, err
	}
	day.Template = tpl

	blocks, err := r.BlocksOn(ctx, physicianID, day.Date)
	if err != nil {
		return nil, err
	}
	day.AddBlocks(blocks)
	if day.WholeDayBlock != nil {
		return day, nil
	}

	booked, err := r.BookedTimes(ctx, physicianID, day.Date)
	if err != nil {
		return nil, err
	}
	day.AddBooked(booked...)

	return day, nil
}

// Candidates é a grade do expediente, sem descontos.
func (d *Day) Candidates() []Clock {
	if d.Template == nil {
		return nil
	}
	grid, err := TemplateGrid(d.Template.StartTime, d.Template.EndTime, d.Template.IntervalMinutes)
	if err != nil {
		return nil
	}
	return grid
}

func (d *Day) blockedAt(c Clock) *models.ScheduleBlock {
	for i := range d.PartialBlocks {
		if CoversTime(d.PartialBlocks[i], c) {
			return &d.PartialBlocks[i]
		}
	}
	return nil
}

func (d *Day) isBooked(c Clock) bool {
	_, ok := d.Booked[c]
	return ok
}

// Free devolve os horários livres em ordem.
func (d *Day) Free() []Clock {
	if d.Template == nil || d.WholeDayBlock != nil {
		return nil
	}
	var free []Clock
	for _, c := range d.Candidates() {
		if d.blockedAt(c) != nil || d.isBooked(c) {
			continue
		}
		free = append(free, c)
	}
	return free
}

type FreeSlots struct {
	Date        string   `json:"data"`
	PhysicianID uint     `json:"medico_id"`
	Weekday     int      `json:"dia_semana"`
	Slots       []string `json:"horarios_livres"`
	Total       int      `json:"total_disponiveis"`
	Blocked     bool     `json:"bloqueado"`
	Reason      string   `json:"motivo,omitempty"`
	Message     string   `json:"mensagem,omitempty"`
	TimedBlocks int      `json:"bloqueios_horario"`
}

func (d *Day) Resolve() FreeSlots {
	out := FreeSlots{
		Date:        d.Date,
		PhysicianID: d.PhysicianID,
		Weekday:     d.Weekday,
		Slots:       []string{},
	}

	switch {
	case d.Template == nil:
		out.Message = "Médico não atende neste dia da semana"
	case d.WholeDayBlock != nil:
		out.Blocked = true
		out.Reason = blockReason(d.WholeDayBlock, "Agenda bloqueada")
	default:
		out.Slots = Labels(d.Free())
		out.TimedBlocks = len(d.PartialBlocks)
	}

	out.Total = len(out.Slots)
	return out
}

// CheckBookable aplica as mesmas regras de Free a um horário pedido e
// devolve o horário normalizado.
func (d *Day) CheckBookable(t string) (Clock, error) {
	c, err := parseClockField("horario", t)
	if err != nil {
		return 0, err
	}

	if d.Template == nil {
		return 0, httperr.Validation("data_consulta", "no_schedule_for_weekday", "Médico não atende neste dia da semana.")
	}

	offered := false
	for _, cand := range d.Candidates() {
		if cand == c {
			offered = true
			break
		}
	}
	if !offered {
		return 0, httperr.Validation("horario", "time_not_offered", "Horário não disponível na agenda do médico.")
	}

	if d.WholeDayBlock != nil {
		return 0, httperr.Conflict("date_blocked", "Agenda bloqueada: "+blockReason(d.WholeDayBlock, "Médico não disponível nesta data"))
	}
	if b := d.blockedAt(c); b != nil {
		return 0, httperr.Conflict("time_blocked", "Horário bloqueado: "+blockReason(b, "Este horário está bloqueado"))
	}
	if d.isBooked(c) {
		return 0, httperr.Conflict("slot_taken", "Horário já está ocupado para este médico.")
	}

	return c, nil
}

type DateAvailability struct {
	Date    string `json:"data"`
	Weekday int    `json:"dia_semana"`
	Free    int    `json:"horarios_disponiveis"`
	Total   int    `json:"horarios_total"`
}

// Summary resume o dia para a busca por período. ok é falso quando não
// há horário livre.
func (d *Day) Summary() (DateAvailability, bool) {
	free := len(d.Free())
	if free == 0 {
		return DateAvailability{}, false
	}
	return DateAvailability{
		Date:    d.Date,
		Weekday: d.Weekday,
		Free:    free,
		Total:   len(d.Candidates()),
	}, true
}
