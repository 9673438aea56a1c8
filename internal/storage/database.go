package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalog_api/pkg/config"
)

// ErrAcquireTimeout 在連線池用盡且等待逾時時回傳
var ErrAcquireTimeout = errors.New("timed out waiting for a pooled connection")

// Database 包裝 gorm.DB 與其底層的連線池
// 每個請求透過 WithConn 借用一條連線，執行完一條語句後歸還
type Database struct {
	*gorm.DB
	acquireTimeout time.Duration
}

// Open 依照設定的驅動建立資料庫連線池
func Open(cfg config.DBConfig, log *slog.Logger) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgresDialector(cfg)
	case config.DriverMySQL:
		dialector = mysqlDialector(cfg)
	case config.DriverSQLite:
		dialector = sqliteDialector(cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver: %q", cfg.Driver)
	}

	// 啟動時不連線，資料庫無法連線時由每個請求各自回報錯誤
	// 每個請求只執行一條 SQL，不包預設交易
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger: logger.New(slog.NewLogLogger(log.Handler(), slog.LevelWarn), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}

	// 固定容量的連線池
	sqlDB.SetMaxOpenConns(cfg.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Database{DB: db, acquireTimeout: cfg.AcquireTimeout}, nil
}

// WithConn 從連線池借用一條連線並執行 fn
// 無論 fn 成功、失敗或 panic，連線都會被歸還
func (db *Database) WithConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	conn, err := db.acquire(ctx, sqlDB)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx := db.DB.Session(&gorm.Session{NewDB: true, Context: ctx})
	tx.Statement.ConnPool = conn

	return fn(tx)
}

func (db *Database) acquire(ctx context.Context, sqlDB *sql.DB) (*sql.Conn, error) {
	acquireCtx := ctx
	if db.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
		defer cancel()
	}

	conn, err := sqlDB.Conn(acquireCtx)
	if err != nil {
		// 呼叫端自己取消時保留原本的錯誤
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w after %s", ErrAcquireTimeout, db.acquireTimeout)
		}
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	return conn, nil
}

// Ping 檢查資料庫是否可連線
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	conn, err := db.acquire(ctx, sqlDB)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.PingContext(ctx)
}

// Stats 回傳連線池的統計資訊
func (db *Database) Stats() sql.DBStats {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
