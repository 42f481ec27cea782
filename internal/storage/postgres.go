package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"itemsvc/pkg/config"
)

// ErrPoolExhausted is returned when no connection frees up within the
// configured pool-wait timeout.
var ErrPoolExhausted = errors.New("connection pool exhausted")

// PostgresDB wraps the GORM handle and owns the connection pool. At most
// PoolSize+MaxOverflow connections are open at once; requests beyond
// that block until one frees or the pool-wait timeout elapses.
type PostgresDB struct {
	*gorm.DB
	poolTimeout time.Duration
}

func NewPostgresDB(cfg config.DBConfig) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.PoolSize + cfg.MaxOverflow)
	sqlDB.SetMaxIdleConns(cfg.PoolSize)

	return &PostgresDB{DB: db, poolTimeout: cfg.PoolTimeout}, nil
}

// Wrap adapts an already-open GORM handle. Tests use this to run the
// storage layer against an in-memory database; NewPostgresDB is the
// production entry point.
func Wrap(db *gorm.DB, poolTimeout time.Duration) *PostgresDB {
	return &PostgresDB{DB: db, poolTimeout: poolTimeout}
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates table structures for the given models.
// Creation is idempotent and never drops existing columns or data.
func (db *PostgresDB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

// Ping is the liveness probe against the store.
func (db *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Session runs fn as one scoped unit of work: a transaction is begun on
// entry, committed when fn returns nil, and rolled back when fn returns
// an error or panics. The connection goes back to the pool on every exit
// path. The pool-wait timeout bounds only the connection acquisition;
// the transaction itself is tied to the caller's context, so a session
// may run longer than the pool-wait timeout without being aborted.
func (db *PostgresDB) Session(ctx context.Context, fn func(tx *gorm.DB) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, db.poolTimeout)
	defer cancel()

	// Connection reserves one pooled connection under acquireCtx and
	// returns it to the pool when the callback exits.
	acquired := false
	err := db.DB.WithContext(acquireCtx).Connection(func(conn *gorm.DB) error {
		acquired = true

		// Begin on the reserved connection under the caller's context:
		// database/sql ties the transaction's lifetime to the BeginTx
		// context, so the acquire deadline must not leak into it.
		tx := conn.WithContext(ctx).Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to begin session: %w", tx.Error)
		}

		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit().Error
	})

	// Only a deadline hit while waiting for a connection counts as pool
	// exhaustion; a caller whose own context expired is not misreported.
	if !acquired && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return ErrPoolExhausted
	}
	return err
}
