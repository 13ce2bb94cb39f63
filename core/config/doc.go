// Package config provides configuration management for imgbase.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file and an optional config.yaml.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, admin API key, body limit)
//   - Storage: bucket driver, base URL, bucket name, anonymous key, timeouts
//   - Log: Logging level and format
//   - Database: optional activity log database (mysql, sqlite)
//
// Environment keys map dots to underscores (STORAGE_BUCKET -> storage.bucket).
// SUPABASE_URL, SUPABASE_ANON_KEY and BUCKET_NAME are accepted as aliases.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
