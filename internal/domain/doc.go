// Package domain contains the core RSVP entities, value objects, and
// validation rules. It is independent of any storage, transport, or
// presentation concern.
package domain
