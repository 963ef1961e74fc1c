package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/msuss/atelier/internal/domain"
)

// LoadPersonality reads a personality record. A missing file is ErrNotFound.
func LoadPersonality(path string) (*domain.Personality, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("personality %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read personality: %w", err)
	}

	var p domain.Personality
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse personality %s: %w", path, err)
	}
	p.Normalize()
	return &p, nil
}

// SavePersonality rewrites the full personality record at path.
func SavePersonality(path string, p *domain.Personality) error {
	return writeJSONFile(path, p)
}
