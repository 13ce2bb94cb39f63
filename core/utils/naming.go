package utils

import (
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// FallbackImageName is the object name used when no usable name was given.
func FallbackImageName(now time.Time) string {
	return fmt.Sprintf("image_%d.jpg", now.UnixMilli())
}

// ImageName returns the first non-blank candidate, or FallbackImageName.
// Backslashes are normalised so Windows paths keep only their base name.
func ImageName(now time.Time, candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(strings.ReplaceAll(c, `\`, "/"))
		if c == "" {
			continue
		}
		base := path.Base(c)
		if base == "." || base == ".." || base == "/" {
			continue
		}
		return base
	}
	return FallbackImageName(now)
}

// MimeType returns the first non-blank candidate, then the type registered for
// the file extension, then fallback.
func MimeType(filename, fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" && c != "application/octet-stream" {
			return c
		}
	}
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); t != "" {
		// Drop parameters such as "; charset=utf-8".
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
		return t
	}
	return fallback
}
