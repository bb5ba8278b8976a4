// Package events provides types and interfaces for reacting to RSVP changes.
//
// Services emit an RsvpEvent after each successful add-or-update without
// knowing which handlers will process it. Metrics collection and CLI
// reporting subscribe through EventHandler.
//
// The primary components are:
// - RsvpEvent: describes one recorded response
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
