package domain

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func playerValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Player identifies a guest who can respond to an invitation.
// The store treats a Player as immutable once submitted.
type Player struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name"`
}

// Validate checks that the player can be used as an RSVP key.
// Returns ErrInvalidPlayer if the receiver is nil or has an empty ID.
func (p *Player) Validate() error {
	if p == nil {
		return ErrInvalidPlayer
	}
	if err := playerValidator().Struct(p); err != nil {
		return ErrInvalidPlayer
	}
	return nil
}
