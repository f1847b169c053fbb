// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database round trips in HTTP
// handlers. Centralized values keep deadlines consistent and make them easy
// to tune in one place.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries and moderate writes
package timeouts

import "time"

const (
	defaultPing   = 2 * time.Second
	defaultShort  = 3 * time.Second
	defaultMedium = 10 * time.Second
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration { return defaultPing }

// Short returns the timeout for simple lookups.
func Short() time.Duration { return defaultShort }

// Medium returns the timeout for list queries and writes.
func Medium() time.Duration { return defaultMedium }
