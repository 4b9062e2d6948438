package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"stayops/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	defaultMaxOpenConnections = 10
	defaultMaxIdleConnections = 10
	defaultConnMaxLifetime    = 30 * time.Minute
)

// Connection holds the read and write pools. They may be the same pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one postgres server the service connects to.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the endpoint as a postgres URL. Credentials are escaped.
func (e Endpoint) DSN() string {
	sslMode := e.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return dsn.String()
}

// Pool sizes the connection pool of every opened database.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

func poolFromConfig(cfg *config.Config) Pool {
	pool := Pool{
		MaxOpen:     defaultMaxOpenConnections,
		MaxIdle:     defaultMaxIdleConnections,
		MaxLifetime: defaultConnMaxLifetime,
	}

	settings := cfg.DB.Postgres.Pool
	if settings.MaxOpen > 0 {
		pool.MaxOpen = settings.MaxOpen
	}

	if settings.MaxIdle > 0 {
		pool.MaxIdle = settings.MaxIdle
	}

	pool.MaxIdle = min(pool.MaxIdle, pool.MaxOpen)

	if settings.MaxLifetimeSeconds > 0 {
		pool.MaxLifetime = time.Duration(settings.MaxLifetimeSeconds) * time.Second
	}

	return pool
}

func (p Pool) apply(db *sqlx.DB) {
	db.SetMaxOpenConns(p.MaxOpen)
	db.SetMaxIdleConns(p.MaxIdle)
	db.SetConnMaxLifetime(p.MaxLifetime)
}

// Endpoints derives the read and write endpoints from cfg, applying the database name prefix.
func Endpoints(cfg *config.Config) (read, write Endpoint) {
	pg := cfg.DB.Postgres

	read = Endpoint{
		Role:     "read",
		Host:     pg.Read.Host,
		Port:     pg.Read.Port,
		Username: pg.Read.Username,
		Password: pg.Read.Password,
		Name:     pg.Prefix + pg.Read.Name,
		SSLMode:  pg.Read.SSLMode,
	}

	write = Endpoint{
		Role:     "write",
		Host:     pg.Write.Host,
		Port:     pg.Write.Port,
		Username: pg.Write.Username,
		Password: pg.Write.Password,
		Name:     pg.Prefix + pg.Write.Name,
		SSLMode:  pg.Write.SSLMode,
	}

	return read, write
}

// New opens both pools and exits the process when either stays unreachable after the configured retries.
func New(cfg *config.Config) *Connection {
	pool := poolFromConfig(cfg)
	attempts := max(cfg.DB.Postgres.MaxRetry, 1)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	read, write := Endpoints(cfg)

	writeDB, err := connect(write, pool, attempts, wait)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open postgres write connection")
	}

	// a read endpoint identical to the write one shares its pool
	if read.DSN() == write.DSN() {
		return NewFromDB(writeDB)
	}

	readDB, err := connect(read, pool, attempts, wait)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open postgres read connection")
	}

	return &Connection{Read: readDB, Write: writeDB}
}

// NewFromDB uses one pool for both reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging write pool: %w", err)
	}

	if c.Read == c.Write {
		return nil
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging read pool: %w", err)
	}

	return nil
}

func connect(endpoint Endpoint, pool Pool, attempts int, wait time.Duration) (*sqlx.DB, error) {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			pool.apply(db)

			log.Info().
				Str("role", endpoint.Role).
				Str("host", endpoint.Host).
				Str("database", endpoint.Name).
				Msg("Connected to postgres")

			return db, nil
		}

		log.Error().
			Err(err).
			Str("role", endpoint.Role).
			Str("host", endpoint.Host).
			Int("attempt", attempt).
			Msg("Failed connecting to postgres")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("connecting to %s postgres after %d attempts: %w", endpoint.Role, attempts, err)
}
