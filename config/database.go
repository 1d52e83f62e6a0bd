package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the SQLite database at path. Foreign keys are off by
// default in SQLite and the schema relies on cascading deletes, so the
// pragma is part of the DSN.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	return db
}
