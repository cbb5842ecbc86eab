package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver

	"status-backend/internal/shared/config"
)

const driverName = "pgx"

var openDB = sql.Open

// Connector hands out a database handle owned by a single caller.
// Callers must Close the handle when done.
type Connector interface {
	Open(ctx context.Context) (*sql.DB, error)
}

// ConnectorFunc adapts a function to Connector.
type ConnectorFunc func(ctx context.Context) (*sql.DB, error)

// Open calls f(ctx).
func (f ConnectorFunc) Open(ctx context.Context) (*sql.DB, error) {
	return f(ctx)
}

// PerRequest opens a fresh single-connection handle on every Open call.
// Nothing is shared between callers.
type PerRequest struct {
	DSN string
}

// NewPerRequest builds a PerRequest connector from database configuration.
func NewPerRequest(cfg config.DatabaseConfig) *PerRequest {
	return &PerRequest{DSN: BuildDSN(cfg)}
}

// Open connects and verifies the connection with the caller's context.
func (p *PerRequest) Open(ctx context.Context) (*sql.DB, error) {
	db, err := openDB(driverName, p.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One physical connection: the pinged connection stays idle in the
	// handle and serves the caller's queries until Close.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// BuildDSN returns cfg.URL when set, otherwise a postgres URL composed from
// the individual fields. Empty fields are passed through so the driver can
// report what is missing.
func BuildDSN(cfg config.DatabaseConfig) string {
	if strings.TrimSpace(cfg.URL) != "" {
		return cfg.URL
	}

	u := url.URL{Scheme: "postgres"}
	if cfg.User != "" || cfg.Password != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.User, cfg.Password)
		} else {
			u.User = url.User(cfg.User)
		}
	}
	host := strings.TrimSpace(cfg.Host)
	if host != "" {
		if port := strings.TrimSpace(cfg.Port); port != "" {
			host = net.JoinHostPort(host, port)
		}
	}
	u.Host = host
	if cfg.Name != "" {
		u.Path = "/" + cfg.Name
	}

	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	if cfg.ConnectTimeout > 0 {
		secs := int(cfg.ConnectTimeout.Seconds())
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u.RawQuery = q.Encode()
	if u.Host == "" && u.User == nil && u.Path == "" {
		// Nothing configured: let pgx apply its defaults (PG* env, local socket).
		dsn := "postgres://"
		if u.RawQuery != "" {
			dsn += "?" + u.RawQuery
		}
		return dsn
	}
	return u.String()
}
