// Package testutil 提供測試共用的資料庫與設定工具
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"catalog_api/internal/models"
	"catalog_api/internal/storage"
	"catalog_api/pkg/config"
)

// DBConfig 回傳指向暫存 sqlite 檔案的資料庫設定
func DBConfig(t *testing.T, poolSize int) config.DBConfig {
	t.Helper()

	return config.DBConfig{
		Driver:         config.DriverSQLite,
		Name:           filepath.Join(t.TempDir(), "catalog.db"),
		PoolSize:       poolSize,
		AcquireTimeout: 2 * time.Second,
	}
}

// NewDB 開啟暫存資料庫並建立三張資料表
// 正式環境的資料表由資料庫本身管理，只有測試會建立資料表
func NewDB(t *testing.T) *storage.Database {
	t.Helper()
	return NewDBWithConfig(t, DBConfig(t, 5))
}

func NewDBWithConfig(t *testing.T, cfg config.DBConfig) *storage.Database {
	t.Helper()

	db, err := storage.Open(cfg, DiscardLogger())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.DB.AutoMigrate(&models.Company{}, &models.Food{}, &models.Student{}); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	return db
}

// DiscardLogger 回傳不輸出任何內容的 logger
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
