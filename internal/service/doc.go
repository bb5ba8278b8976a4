// Package service contains the RSVP use cases. It orchestrates domain
// validation, the RSVP store (defined in internal/store), event emission,
// and logging to fulfill add-or-update and aggregation requests.
//
// Key components:
//
// 1. Service Interface:
//   - RsvpService exposes AddOrUpdateRsvp, GetRsvp, GetConfirmedAttendees,
//     GetRsvpCounts and GetAllRsvps
//
// 2. Dependency Management:
//   - The logger is the one required collaborator
//   - Store, event emitter and clock are injected through options; the store
//     defaults to the in-memory implementation
//
// 3. Error Handling:
//   - Validation failures are returned as the domain sentinel errors
//   - Unexpected store failures are wrapped in ServiceError
//   - Logging and event delivery are best effort and never change a result
package service
