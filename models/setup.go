package models

import (
	"log/slog"
	"os"

	slogGorm "github.com/imdatngo/slog-gorm/v2"
	"gorm.io/driver/postgres"
	_ "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	GormDB *gorm.DB
}

var DB *Database

func ConnectDatabase() {
	gormLogger := slogGorm.NewWithConfig(
		slogGorm.NewConfig(slog.Default().WithGroup("gorm").Handler()),
	)

	database, err := gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})

	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		panic("Failed to connect to database!")
	}

	err = database.AutoMigrate(&User{}, &Token{}, &Category{}, &Product{}, &Order{}, &Message{})
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		panic("Failed to run database migrations!")
	}

	DB = &Database{GormDB: database}
}
