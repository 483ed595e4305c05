package entity

import (
	"slices"
	"strings"

	domainerrors "sportera/internal/domain/errors"
)

// DefaultSports is the sport vocabulary used when configuration does not supply one.
var DefaultSports = []string{
	"football", "basketball", "tennis", "volleyball", "handball", "rugby",
	"natation", "running", "cyclisme", "fitness", "musculation", "yoga",
	"pilates", "danse", "escalade", "badminton", "squash", "ping-pong",
	"boxe", "arts-martiaux", "aquafitness", "crossfit", "athlétisme",
	"judo", "karaté", "aikido", "plongée", "autre",
}

// SportVocabulary is the closed set of sport identifiers a place may offer.
type SportVocabulary struct {
	sports map[string]struct{}
	order  []string
}

// NewSportVocabulary builds a vocabulary from raw names, lowercased and de-duplicated.
// An empty list falls back to DefaultSports.
func NewSportVocabulary(names []string) SportVocabulary {
	if len(names) == 0 {
		names = DefaultSports
	}

	v := SportVocabulary{sports: make(map[string]struct{}, len(names))}
	for _, name := range names {
		key := normalizeSport(name)
		if key == "" {
			continue
		}
		if _, seen := v.sports[key]; seen {
			continue
		}
		v.sports[key] = struct{}{}
		v.order = append(v.order, key)
	}

	return v
}

// Contains reports whether sport, compared case-insensitively, is in the vocabulary.
func (v SportVocabulary) Contains(sport string) bool {
	_, ok := v.sports[normalizeSport(sport)]

	return ok
}

// Sports returns the vocabulary in declaration order.
func (v SportVocabulary) Sports() []string {
	return slices.Clone(v.order)
}

// Normalize lowercases and de-duplicates raw, keeping first occurrences in order.
// Every entry outside the vocabulary is reported in one validation error.
func (v SportVocabulary) Normalize(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, domainerrors.NewValidationError("sports", "at least one sport is required")
	}

	normalized := make([]string, 0, len(raw))
	var invalid []string
	for _, sport := range raw {
		key := normalizeSport(sport)
		if _, ok := v.sports[key]; !ok {
			invalid = append(invalid, sport)

			continue
		}
		if !slices.Contains(normalized, key) {
			normalized = append(normalized, key)
		}
	}

	if len(invalid) > 0 {
		return nil, domainerrors.NewValidationErrorf("sports", "unknown sports: %s", strings.Join(invalid, ", "))
	}

	return normalized, nil
}

func normalizeSport(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
