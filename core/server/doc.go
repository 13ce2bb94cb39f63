// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) handles the server startup; this
// package only defines the settings it reads: the listen port, the admin API key
// and the request body limit that bounds uploads.
package server
