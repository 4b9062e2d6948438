package timezone

import (
	"fmt"
	"sync"
	"time"

	"stayops/config"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var (
	mu       sync.RWMutex
	location *time.Location
	loadOnce sync.Once
)

// Use switches the application timezone. An unknown zone leaves the current one in place.
func Use(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", name, err)
	}

	loadOnce.Do(func() {})

	mu.Lock()
	location = loc
	mu.Unlock()

	return nil
}

// GetLocation returns the application timezone, loading it from APP_TIMEZONE on first use.
func GetLocation() *time.Location {
	loadOnce.Do(loadConfigured)

	mu.RLock()
	defer mu.RUnlock()

	if location == nil {
		return time.UTC
	}

	return location
}

func loadConfigured() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		name = defaultZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, using UTC. Use IANA names such as 'Europe/Lisbon'")

		loc = time.UTC
	}

	mu.Lock()
	location = loc
	mu.Unlock()
}

// Now is the current instant in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the current calendar day in the application timezone as UTC midnight.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf returns the calendar day t falls on in the application timezone, as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(GetLocation()).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
