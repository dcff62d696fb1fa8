package db

import (
	"fmt"
	"strings"

	"rental-api/confs"
	"rental-api/entities"
	"rental-api/logger"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured store, sizes the pool and migrates the schema.
func Connect(cfg *confs.Config, log zerolog.Logger) (Database, error) {
	log = logger.Component(log, "storage")

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case confs.DriverSQLite:
		log.Info().Str("path", cfg.SQLitePath).Msg("connecting to sqlite database")
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dsn, mode := postgresDSN(cfg)
		log.Info().Str("mode", mode).Msg("connecting to postgres database")
		dialector = postgres.Open(dsn)
	}

	database, err := Open(dialector, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.GetDB().DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Info().Msg("database connection established")
	return database, nil
}

// Open connects through dialector and runs the migrations.
func Open(dialector gorm.Dialector, log zerolog.Logger) (Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGorm(log),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return &GormDatabase{DB: db}, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.Property{}, &entities.Transaction{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// postgresDSN prefers DB_URL and otherwise builds a key/value DSN. Remote
// hosts get sslmode=require unless the URL already chooses a mode.
func postgresDSN(cfg *confs.Config) (dsn, mode string) {
	if cfg.DBURL != "" {
		dsn = cfg.DBURL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn, "url"
	}

	sslMode := "require"
	if cfg.DBHost == "localhost" || cfg.DBHost == "127.0.0.1" {
		sslMode = "disable"
	}
	dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)
	return dsn, "params sslmode=" + sslMode
}
