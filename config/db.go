package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the application database. MySQL is used when MYSQL_DSN or
// MYSQL_HOST is set; otherwise a local SQLite file keeps dev and tests
// self-contained.
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" && os.Getenv("MYSQL_HOST") != "" {
		user := os.Getenv("MYSQL_USER")
		pass := os.Getenv("MYSQL_PASS")
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		db := os.Getenv("MYSQL_DB")
		if port == "" {
			port = "3306"
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
	}

	if dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "grocery.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
}
