// Package store defines interfaces for RSVP persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// service layer, so the add-or-update and aggregation rules stay independent
// of where entries are kept.
package store
