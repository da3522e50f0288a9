// Package catalog loads the document type catalog from a TOML file and
// synchronises it with the document_types table.
//
// File layout:
//
//	[[document_types]]
//	id = "rp-passport"
//	name = "Passeport"
//	required = true
//	visa_category = "residence_permanente"
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/pelletier/go-toml/v2"
)

var (
	ErrEmptyCatalog        = errors.New("catalog has no document types")
	ErrInvalidEntry        = errors.New("invalid catalog entry")
	ErrDuplicateTypeID     = errors.New("duplicate document type id")
	ErrUnknownVisaCategory = errors.New("unknown visa category")
)

type file struct {
	DocumentTypes []entities.DocumentType `toml:"document_types"`
}

func Load(path string) ([]entities.DocumentType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a catalog. Entries keep their file order.
func Parse(data []byte) ([]entities.DocumentType, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.DocumentTypes) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(f.DocumentTypes))
	out := make([]entities.DocumentType, 0, len(f.DocumentTypes))
	for i, t := range f.DocumentTypes {
		t.ID = strings.TrimSpace(t.ID)
		t.Name = strings.TrimSpace(t.Name)
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("%w: entry %d needs id and name", ErrInvalidEntry, i+1)
		}
		if !t.VisaCategory.Valid() {
			return nil, fmt.Errorf("%w: %q on %s", ErrUnknownVisaCategory, t.VisaCategory, t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTypeID, t.ID)
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out, nil
}

// Sync upserts every type and stops at the first failure. It returns how many were written.
func Sync(ctx context.Context, repo interfaces.IDocumentTypeRepository, types []entities.DocumentType) (int, error) {
	for i, t := range types {
		if _, err := repo.Upsert(ctx, t); err != nil {
			log.Printf("[catalog][sync] upsert failed id=%s err=%v", t.ID, err)
			return i, fmt.Errorf("upsert %s: %w", t.ID, err)
		}
	}
	log.Printf("[catalog][sync] done count=%d", len(types))
	return len(types), nil
}
