// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=characterservicemock github.com/KirkDiggler/rpg-chargen/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
)

// MaxBatch caps how many characters one request may generate
const MaxBatch = 100

// Service defines the interface for character operations
type Service interface {
	// GenerateCharacters runs the generator Count times, optionally saving
	// the results and looking up SRD notes for their equipment
	GenerateCharacters(ctx context.Context, input *GenerateCharactersInput) (*GenerateCharactersOutput, error)

	// Stored character operations; these need a repository
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// GenerateCharactersInput defines the request for generating characters
type GenerateCharactersInput struct {
	// Options pins choices for every character in the batch. A non-zero
	// seed S gives the i-th character seed S+i.
	Options *generator.GenerateInput
	// Count defaults to 1
	Count    int
	Save     bool
	Annotate bool
}

// GenerateCharactersOutput defines the response for generating characters
type GenerateCharactersOutput struct {
	Characters []*dnd5e.Character
	// ItemNotes maps equipment names to SRD summaries when Annotate is set
	ItemNotes map[string]string
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
	Annotate    bool
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character
	ItemNotes map[string]string
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	Limit int
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Message string
}
