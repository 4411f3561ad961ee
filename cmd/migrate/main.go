package main

import (
	"log"

	"brigade-taxonomy-be/internal/config"
	"brigade-taxonomy-be/internal/model"
	"brigade-taxonomy-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.TaxonomyEntry{},
		&model.Message{},
		&model.Activity{},
	)
	if err != nil {
		color.Red("Migration failed: %v", err)
		return
	}

	color.Green("Migration completed")
}
