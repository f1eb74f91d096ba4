package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound    = errors.New("catalog item not found")
	ErrDuplicateID = errors.New("duplicate catalog id")
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

var validate = validator.New()

// Source supplies the reference data the site is built from.
type Source interface {
	Activities(ctx context.Context) ([]Activity, error)
	Events(ctx context.Context) ([]Event, error)
}

// Document is the on-disk shape of a catalog.
type Document struct {
	Activities []Activity `yaml:"activities" validate:"dive"`
	Events     []Event    `yaml:"events" validate:"dive"`
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks field constraints and id uniqueness.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}
	if err := uniqueIDs(d.Activities, func(a Activity) int { return a.ID }); err != nil {
		return fmt.Errorf("activities: %w", err)
	}
	if err := uniqueIDs(d.Events, func(e Event) int { return e.ID }); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	return nil
}

func uniqueIDs[T any](items []T, id func(T) int) error {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		k := id(item)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct {
	doc *Document
}

// NewEmbeddedSource parses the built-in catalog.
func NewEmbeddedSource() (*EmbeddedSource, error) {
	doc, err := Parse(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return &EmbeddedSource{doc: doc}, nil
}

func (s *EmbeddedSource) Activities(ctx context.Context) ([]Activity, error) {
	return append([]Activity(nil), s.doc.Activities...), nil
}

func (s *EmbeddedSource) Events(ctx context.Context) ([]Event, error) {
	return append([]Event(nil), s.doc.Events...), nil
}
