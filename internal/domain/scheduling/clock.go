package scheduling

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Clock é um horário do dia em minutos desde a meia-noite.
type Clock int

const minutesPerDay = 24 * 60

// ParseClock aceita apenas "HH:MM" com dois dígitos em cada parte.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	h, okH := twoDigits(s[0:2])
	m, okM := twoDigits(s[3:5])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	return Clock(h*60 + m), nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// parseClockField devolve erro de validação ligado ao campo informado.
func parseClockField(field, value string) (Clock, error) {
	c, err := ParseClock(value)
	if err != nil {
		return 0, httperr.Validation(field, "invalid_time", field+" deve estar no formato HH:MM.")
	}
	return c, nil
}
