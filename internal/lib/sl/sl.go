// Package sl holds small helpers for building structured slog fields.
package sl

import "log/slog"

// Err returns a slog.Attr with key "error" and the error text as value,
// so errors are logged uniformly across handlers and services.
//
// Example:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
