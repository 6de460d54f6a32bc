// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on
// the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the database.
// SQLite connections are limited to a single connection so ":memory:" databases behave
// as one shared store.
//
// # Schema
//
// Migrate runs GORM auto-migration for the inventory models. GetTableColumns reads the
// live column list of a table and backs the schema integrity check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "dcim_interface")
package database
