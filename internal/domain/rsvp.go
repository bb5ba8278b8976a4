package domain

import (
	"fmt"
	"time"
)

// RsvpStatus is a player's answer to an invitation.
type RsvpStatus string

// Possible RSVP status values
const (
	RsvpStatusYes   RsvpStatus = "Yes"
	RsvpStatusNo    RsvpStatus = "No"
	RsvpStatusMaybe RsvpStatus = "Maybe"
)

// RsvpStatuses returns every valid status in display order.
func RsvpStatuses() []RsvpStatus {
	return []RsvpStatus{RsvpStatusYes, RsvpStatusNo, RsvpStatusMaybe}
}

// IsValid reports whether s is one of the enumerated statuses.
func (s RsvpStatus) IsValid() bool {
	switch s {
	case RsvpStatusYes, RsvpStatusNo, RsvpStatusMaybe:
		return true
	default:
		return false
	}
}

func (s RsvpStatus) String() string {
	return string(s)
}

// ParseRsvpStatus converts user input into an RsvpStatus. Only the exact
// spellings Yes, No and Maybe are accepted; anything else, including other
// casings or padded values, yields ErrInvalidStatus.
func ParseRsvpStatus(raw string) (RsvpStatus, error) {
	s := RsvpStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w (got %q)", ErrInvalidStatus, raw)
	}
	return s, nil
}

// RsvpEntry is the stored response of one player.
// Entries are replaced, never mutated, so a returned pointer is a stable
// snapshot of the response at the time it was recorded.
type RsvpEntry struct {
	Player    Player     `json:"player"`
	Status    RsvpStatus `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewRsvpEntry validates the player and status and builds an entry stamped
// with the given time.
func NewRsvpEntry(player *Player, status RsvpStatus, now time.Time) (*RsvpEntry, error) {
	if err := player.Validate(); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w (got %q)", ErrInvalidStatus, string(status))
	}
	return &RsvpEntry{
		Player:    *player,
		Status:    status,
		UpdatedAt: now,
	}, nil
}

// RsvpCounts summarizes responses by status.
// Confirmed + Declined + Maybe always equals Total.
type RsvpCounts struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
	Maybe     int `json:"maybe"`
}

// Add records one response in the counts.
func (c *RsvpCounts) Add(status RsvpStatus) {
	switch status {
	case RsvpStatusYes:
		c.Confirmed++
	case RsvpStatusNo:
		c.Declined++
	case RsvpStatusMaybe:
		c.Maybe++
	default:
		return
	}
	c.Total++
}

// CountRsvps tallies the given entries.
func CountRsvps(entries []*RsvpEntry) RsvpCounts {
	var counts RsvpCounts
	for _, e := range entries {
		if e == nil {
			continue
		}
		counts.Add(e.Status)
	}
	return counts
}

// For returns the count for a single status.
func (c RsvpCounts) For(status RsvpStatus) int {
	switch status {
	case RsvpStatusYes:
		return c.Confirmed
	case RsvpStatusNo:
		return c.Declined
	case RsvpStatusMaybe:
		return c.Maybe
	default:
		return 0
	}
}
