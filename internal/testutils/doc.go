// Package testutils provides test doubles shared by package tests: a
// memory-backed slog.Handler and a Logger that records every call.
package testutils
