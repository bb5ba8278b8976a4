// Package roster reads guest lists and their responses from YAML files and
// replays them against an RSVP service.
package roster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPlayer is returned when a response names a player missing from
// the roster.
var ErrUnknownPlayer = errors.New("response references unknown player")

// Roster is a guest list plus the responses to apply, in order.
type Roster struct {
	Event     string          `yaml:"event"`
	Players   []domain.Player `yaml:"players"`
	Responses []Response      `yaml:"responses"`
}

// Response is one submission in a roster file.
type Response struct {
	PlayerID string `yaml:"player"`
	Status   string `yaml:"status"`
}

// Submitter is the part of the RSVP service a roster needs.
type Submitter interface {
	AddOrUpdateRsvp(ctx context.Context, player *domain.Player, status domain.RsvpStatus) (*domain.RsvpEntry, error)
}

// Load reads and parses a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a roster document. Unknown fields are rejected.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	return &r, nil
}

// Player looks up a roster player by ID.
func (r *Roster) Player(id string) (*domain.Player, bool) {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// Apply submits every response in order and returns how many were stored.
// It stops at the first failure; the error names the failing response.
func (r *Roster) Apply(ctx context.Context, svc Submitter) (int, error) {
	for i, resp := range r.Responses {
		player, ok := r.Player(resp.PlayerID)
		if !ok {
			return i, fmt.Errorf("response %d: %w %q", i+1, ErrUnknownPlayer, resp.PlayerID)
		}
		status, err := domain.ParseRsvpStatus(resp.Status)
		if err != nil {
			return i, fmt.Errorf("response %d: %w", i+1, err)
		}
		if _, err := svc.AddOrUpdateRsvp(ctx, player, status); err != nil {
			return i, fmt.Errorf("response %d: %w", i+1, err)
		}
	}
	return len(r.Responses), nil
}
