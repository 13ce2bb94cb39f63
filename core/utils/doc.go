// Package utils provides helpers shared by the upload feature and the CLI.
// It resolves object names and content types for uploaded images.
package utils
