// Package config provides configuration management for devicesync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: inventory database connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket for report archives
//   - Log: Logging level and format
//   - Sync: synchronization job behaviour (tag bootstrapping, report archiving)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config
