// Package database handles the optional database connection.
//
// It wraps GORM to open a MySQL or SQLite connection from the application's
// configuration. The database is optional: with no driver configured Connect
// returns ErrDisabled and callers run without the activity log.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
