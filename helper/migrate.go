package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"stayops/config"
	"stayops/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource = "file://migrations/postgres"

	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

type step struct {
	run  func(*migrate.Migrate) error
	done string
}

var steps = map[string]step{
	ActionUp:     {run: (*migrate.Migrate).Up, done: "Database migrations applied"},
	ActionDown:   {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Last database migration rolled back"},
	ActionStepUp: {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Next database migration applied"},
	ActionDrop:   {run: (*migrate.Migrate).Down, done: "All database migrations rolled back"},
}

// Actions lists the accepted migration actions.
func Actions() []string {
	return append(slices.Sorted(maps.Keys(steps)), ActionVersion)
}

// DatabaseURL is the write endpoint with the migration bookkeeping table as a query parameter.
func DatabaseURL(cfg *config.Config) string {
	_, write := postgres.Endpoints(cfg)

	dsn := write.DSN()
	if table := strings.TrimSpace(cfg.DB.Postgres.MigrationTable); table != "" {
		dsn += "&x-migrations-table=" + url.QueryEscape(table)
	}

	return dsn
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, DatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies a migration action against the write database. Having nothing to apply is not an error.
func Runner(cfg *config.Config, action string) error {
	stp, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q, expected one of %s", action, strings.Join(Actions(), ", "))
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err = stp.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg(stp.done)

	return nil
}

// Version reports the applied schema version and whether the last run left it dirty.
func Version(cfg *config.Config) (uint, bool, error) {
	mig, err := open(cfg)
	if err != nil {
		return 0, false, err
	}
	defer mig.Close()

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, fmt.Errorf("reading migration version: %w", err)
	}

	return version, dirty, nil
}
