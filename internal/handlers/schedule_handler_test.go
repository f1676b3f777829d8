package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTemplates_DuplicateAndDeactivate(t *testing.T) {
	s := newServer(t)
	s.createMondayTemplate()

	status, body := s.do(http.MethodPost, "/api/agenda-medicos", map[string]any{
		"medico_id":      s.physician.ID,
		"dia_semana":     1,
		"horario_inicio": "13:00",
		"horario_fim":    "17:00",
	})
	if status != http.StatusConflict || body["error_code"] != "duplicate_template" {
		t.Fatalf("duplicate template: %d %v", status, body)
	}

	status, body = s.do(http.MethodGet, fmt.Sprintf("/api/agenda-medicos/%d", s.physician.ID), nil)
	if status != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("list by physician: %d %v", status, body)
	}
	id := uint(body["data"].([]any)[0].(map[string]any)["id"].(float64))

	status, _ = s.do(http.MethodPatch, fmt.Sprintf("/api/agenda-medicos/%d/desativar", id), nil)
	if status != http.StatusOK {
		t.Fatalf("deactivate: %d", status)
	}
	if got := len(s.freeSlots()); got != 0 {
		t.Errorf("deactivated template still offers %d slots", got)
	}

	s.createMondayTemplate()
}

func TestTemplates_Validation(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing weekday", map[string]any{"medico_id": s.physician.ID, "horario_inicio": "08:00", "horario_fim": "12:00"}, "missing_field"},
		{"weekday out of range", map[string]any{"medico_id": s.physician.ID, "dia_semana": 7, "horario_inicio": "08:00", "horario_fim": "12:00"}, "invalid_weekday"},
		{"end before start", map[string]any{"medico_id": s.physician.ID, "dia_semana": 1, "horario_inicio": "12:00", "horario_fim": "08:00"}, "invalid_time_range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := s.do(http.MethodPost, "/api/agenda-medicos", tt.body)
			if status != http.StatusBadRequest || body["error_code"] != tt.want {
				t.Errorf("got %d %v, want %s", status, body, tt.want)
			}
		})
	}

	status, _ := s.do(http.MethodPost, "/api/agenda-medicos", map[string]any{
		"medico_id": 999, "dia_semana": 1, "horario_inicio": "08:00", "horario_fim": "12:00",
	})
	if status != http.StatusNotFound {
		t.Errorf("unknown physician: expected 404, got %d", status)
	}
}

func TestBlocks_WholeDayLifecycle(t *testing.T) {
	s := newServer(t)
	s.createMondayTemplate()

	status, body := s.do(http.MethodPost, "/api/bloqueios", map[string]any{
		"medico_id":   s.physician.ID,
		"data_inicio": monday,
		"data_fim":    "2024-01-05",
		"motivo":      "Congresso",
	})
	if status != http.StatusCreated || body["tipo"] != "dia_inteiro" {
		t.Fatalf("create block: %d %v", status, body)
	}
	id := uint(body["id"].(float64))

	_, free := s.do(http.MethodGet, fmt.Sprintf("/api/agenda/horarios-livres?medico_id=%d&data=%s", s.physician.ID, monday), nil)
	if free["bloqueado"] != true || free["motivo"] != "Congresso" {
		t.Errorf("expected whole-day block, got %v", free)
	}

	status, body = s.do(http.MethodGet, fmt.Sprintf("/api/bloqueios?medico_id=%d&data_inicio=2024-01-03&data_fim=2024-01-10", s.physician.ID), nil)
	if status != http.StatusOK || body["total"] != float64(1) {
		t.Fatalf("list blocks: %d %v", status, body)
	}

	status, body = s.do(http.MethodPut, fmt.Sprintf("/api/bloqueios/%d", id), map[string]any{
		"data_inicio":    monday,
		"data_fim":       monday,
		"horario_inicio": "08:00",
	})
	if status != http.StatusBadRequest || body["error_code"] != "incomplete_time_range" {
		t.Errorf("half time range: %d %v", status, body)
	}

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/bloqueios/%d", id), nil)
	if status != http.StatusOK {
		t.Fatalf("delete block: %d", status)
	}
	if got := len(s.freeSlots()); got != 8 {
		t.Errorf("expected 8 slots after removing block, got %d", got)
	}

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/bloqueios/%d", id), nil)
	if status != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", status)
	}
}
