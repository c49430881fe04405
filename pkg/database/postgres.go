package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"filmes-api/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB owns the pgx pool and the gorm handle built on top of it.
type DB struct {
	Gorm *gorm.DB
	pool *pgxpool.Pool
	sql  *sql.DB
}

// Close releases the gorm handle and then the pool.
func (db *DB) Close() {
	db.sql.Close()
	db.pool.Close()
}

// InitDB creates the connection pool and opens gorm over it
func InitDB(config utils.DatabaseConfig, debug bool, log *zap.Logger) (*DB, error) {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=%s host=%s port=%s",
		config.User, config.Password, config.Name, config.SSLMode, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	// Pool configuration
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = 2
	if poolConfig.MinConns > poolConfig.MaxConns {
		poolConfig.MinConns = poolConfig.MaxConns
	}
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := OpenGorm(sqlDB, log, debug)
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, err
	}

	return &DB{Gorm: gormDB, pool: pool, sql: sqlDB}, nil
}

// OpenGorm opens gorm's postgres dialect over conn. Store errors such as
// foreign key and unique violations come back translated to gorm's
// sentinels. Every write is a single statement, so gorm's implicit
// transaction around it is skipped.
func OpenGorm(conn gorm.ConnPool, log *zap.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger:                 NewGormLogger(log, debug),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}
