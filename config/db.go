package config

import (
	"context"
	"fmt"
	"os"

	"daansetu/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var pool *pgxpool.Pool

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

func BootDB() (*pgxpool.Pool, error) {
	url := GetDatabaseURL()

	if err := autoMigrate(url); err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if pool == nil {
		pool = db
	}

	return pool, nil
}

// autoMigrate keeps the schema in step with the domain structs. The gorm
// connection exists only for migration; the repositories run on pgxpool.
func autoMigrate(url string) error {
	gormDB, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := gormDB.AutoMigrate(&domain.Donation{}, &domain.Request{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
