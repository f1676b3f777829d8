package scheduling

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const DateLayout = "2006-01-02"

// ParseDate interpreta uma data civil. O resultado fica em UTC para que o
// dia da semana não dependa do fuso do processo.
func ParseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, httperr.Validation(field, "invalid_date", field+" deve estar no formato AAAA-MM-DD.")
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// Weekday devolve 0 (domingo) a 6 (sábado).
func Weekday(d time.Time) int {
	return int(d.Weekday())
}

// DaysBetween conta as datas do intervalo fechado [from, to].
func DaysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// EachDate percorre [from, to] em ordem.
func EachDate(from, to time.Time, fn func(time.Time)) {
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
