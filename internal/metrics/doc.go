// Package metrics exposes RSVP activity as Prometheus collectors.
//
// A Collector counts stored responses by subscribing to RSVP events, and
// reports the live per-status breakdown through gauge functions that query
// the service on every scrape or gather.
package metrics
