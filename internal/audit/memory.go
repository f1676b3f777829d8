package audit

import (
	"context"
	"sync"
)

// Memory guarda eventos em memória. Usado em testes e quando o banco de
// auditoria não é necessário.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func (m *Memory) Write(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *Memory) Actions() []string {
	var out []string
	for _, ev := range m.Events() {
		out = append(out, ev.Action)
	}
	return out
}
