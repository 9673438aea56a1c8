package storage

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"catalog_api/pkg/config"
)

// sqliteDialector 以 cfg.Name 作為資料庫檔案路徑，供本機開發與測試使用
func sqliteDialector(cfg config.DBConfig) gorm.Dialector {
	dsn := cfg.Name
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	return sqlite.Open(dsn)
}
