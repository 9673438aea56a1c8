package storage

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"catalog_api/pkg/config"
)

// mysqlDialector 同時適用於 MariaDB
// clientFoundRows 讓 UPDATE 回傳符合條件的列數，而不是實際被修改的列數
func mysqlDialector(cfg config.DBConfig) gorm.Dialector {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&clientFoundRows=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	return mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	})
}
