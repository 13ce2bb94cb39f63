// Package activity keeps an optional log of storage operations.
//
// Every upload and delete made through the HTTP features or the CLI is recorded
// with its outcome: success, or the failure kind and message. The log lives in
// the storage_activities table of the configured database (MySQL or SQLite).
// Without a database the feature is disabled and NopRecorder is used.
//
// # HTTP Endpoints
//
//   - GET /activity?limit=N : most recent records, newest first (admin).
package activity
