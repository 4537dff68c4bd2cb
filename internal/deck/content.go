package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed deck.yaml
var embeddedDeck []byte

// ErrInvalidDeck is returned when deck content breaks a structural rule.
var ErrInvalidDeck = errors.New("invalid deck")

// BenefitsPerSlide is the fixed number of benefit cards on a pipeline slide.
const BenefitsPerSlide = 3

var (
	defaultOnce sync.Once
	defaultDeck *Deck
)

// Default returns the embedded presentation. The document is parsed once;
// every call returns the same value, which callers must not modify.
func Default() *Deck {
	defaultOnce.Do(func() {
		d, err := Parse(embeddedDeck)
		if err != nil {
			panic(fmt.Sprintf("embedded deck: %v", err))
		}
		defaultDeck = d
	})
	return defaultDeck
}

// Load reads and validates a deck document from r.
func Load(r io.Reader) (*Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a deck document.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the structural rules every deck must satisfy.
func (d *Deck) Validate() error {
	if len(d.Slides) != Count {
		return fmt.Errorf("%w: want %d slides, got %d", ErrInvalidDeck, Count, len(d.Slides))
	}
	for i, s := range d.Slides {
		if int(s.ID) != i {
			return fmt.Errorf("%w: slide at position %d has id %d", ErrInvalidDeck, i, s.ID)
		}
		if s.Title == "" {
			return fmt.Errorf("%w: slide %d has no title", ErrInvalidDeck, i)
		}
		if err := s.validateBody(); err != nil {
			return fmt.Errorf("%w: slide %d: %v", ErrInvalidDeck, i, err)
		}
	}
	return nil
}

func (s Slide) validateBody() error {
	switch s.Kind {
	case KindPipeline:
		if len(s.Layers) == 0 {
			return errors.New("pipeline slide has no layers")
		}
		for j, l := range s.Layers {
			if len(l.Nodes) == 0 {
				return fmt.Errorf("layer %d is empty", j)
			}
		}
		if len(s.Benefits) != BenefitsPerSlide {
			return fmt.Errorf("want %d benefits, got %d", BenefitsPerSlide, len(s.Benefits))
		}
	case KindServices:
		if len(s.Services) == 0 {
			return errors.New("services slide has no services")
		}
	case KindSteps:
		if len(s.Steps) == 0 {
			return errors.New("steps slide has no steps")
		}
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}
