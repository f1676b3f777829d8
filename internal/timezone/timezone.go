package timezone

import (
	"sync"
	"time"
	_ "time/tzdata" // imagens sem /usr/share/zoneinfo
)

// DefaultTimezone vale quando CLINIC_TIMEZONE está vazio ou inválido.
const DefaultTimezone = "America/Sao_Paulo"

var (
	mu    sync.RWMutex
	cache = map[string]*time.Location{}
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := load(tz)
	return err == nil
}

// Location resolve tz com fallback para DefaultTimezone e, sem tzdata, UTC.
func Location(tz string) *time.Location {
	if loc, err := load(tz); err == nil {
		return loc
	}
	if loc, err := load(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve a data civil corrente da clínica, AAAA-MM-DD.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}

func load(tz string) (*time.Location, error) {
	mu.RLock()
	loc, ok := cache[tz]
	mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	cache[tz] = loc
	mu.Unlock()
	return loc, nil
}
