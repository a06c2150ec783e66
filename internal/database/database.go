package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lumenkraft/hr-management/internal"
)

// DB holds the process-lifetime connection pool. The sqlx handle owns the
// underlying *sql.DB; GORM is layered over the same pool so repositories and
// raw bootstrap code share one set of connections.
type DB struct {
	sqlx *sqlx.DB
	gorm *gorm.DB
}

// Connect opens the pool, applies the configured limits and verifies the
// connection with a ping.
func Connect(cfg internal.DatabaseConfig) (*DB, error) {
	const driver = "pgx"

	conn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &DB{sqlx: conn, gorm: gdb}, nil
}

// Gorm exposes the ORM handle for repositories.
func (d *DB) Gorm() *gorm.DB {
	return d.gorm
}

// SQL exposes the raw pool for health checks and migrations.
func (d *DB) SQL() *sql.DB {
	return d.sqlx.DB
}

func (d *DB) Ping(ctx context.Context) error {
	return d.sqlx.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.sqlx.Close()
}
