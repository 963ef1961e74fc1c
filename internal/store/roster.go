package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/msuss/atelier/internal/domain"
)

const (
	personalityFile = "personality.json"
	memoryFile      = "memory.json"
	goalFile        = "goal.txt"
	artDir          = "art"
)

// Roster is the directory of artists. Each artist lives in its own
// subdirectory holding a personality record, a memory log and a goal.
type Roster struct {
	dir string
}

func NewRoster(dir string) *Roster {
	return &Roster{dir: dir}
}

func (r *Roster) Dir() string { return r.dir }

// ArtistDir returns the storage location of an artist.
func (r *Roster) ArtistDir(id string) string {
	return filepath.Join(r.dir, id)
}

// ArtDir is where file-backed artifacts of an artist are written.
func (r *Roster) ArtDir(id string) string {
	return filepath.Join(r.dir, id, artDir)
}

// Discover lists artist ids whose directory holds a readable personality
// record. Directories with a missing or corrupt record are skipped. A missing
// roster directory yields no artists.
func (r *Roster) Discover() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read artists dir: %w", err)
	}

	ids := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := LoadPersonality(filepath.Join(r.dir, e.Name(), personalityFile)); err == nil {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Load reads an artist's personality and opens its memory.
func (r *Roster) Load(id string) (*domain.Personality, *Memory, string, error) {
	dir, err := r.existingDir(id)
	if err != nil {
		return nil, nil, "", err
	}
	p, err := LoadPersonality(filepath.Join(dir, personalityFile))
	if err != nil {
		return nil, nil, "", err
	}
	return p, OpenMemory(filepath.Join(dir, memoryFile)), dir, nil
}

// OpenMemory opens the memory log of an existing artist.
func (r *Roster) OpenMemory(id string) (*Memory, error) {
	dir, err := r.existingDir(id)
	if err != nil {
		return nil, err
	}
	return OpenMemory(filepath.Join(dir, memoryFile)), nil
}

func (r *Roster) SavePersonality(id string, p *domain.Personality) error {
	dir, err := r.existingDir(id)
	if err != nil {
		return err
	}
	return SavePersonality(filepath.Join(dir, personalityFile), p)
}

// Goal returns the artist's goal text, or "" when none was set.
func (r *Roster) Goal(id string) (string, error) {
	dir, err := r.existingDir(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, goalFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read goal: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Create lays out a new artist from a template and returns its id.
func (r *Roster) Create(t *domain.ArtistTemplate) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	id := domain.ArtistID(t.Name)
	if !validID(id) {
		return "", fmt.Errorf("%w: name %q is not usable as a directory", domain.ErrInvalidTemplate, t.Name)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create artists dir: %w", err)
	}
	dir := r.ArtistDir(id)
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("artist %s: %w", id, ErrConflict)
		}
		return "", fmt.Errorf("create artist dir: %w", err)
	}

	if err := SavePersonality(filepath.Join(dir, personalityFile), t.Personality()); err != nil {
		return "", err
	}
	if err := writeJSONFile(filepath.Join(dir, memoryFile), domain.MemoryRecord{
		Experiences: []domain.ExperienceRecord{},
		Creations:   []domain.Creation{},
	}); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, goalFile), []byte(t.Goal), 0o644); err != nil {
		return "", fmt.Errorf("write goal: %w", err)
	}
	return id, nil
}

func (r *Roster) existingDir(id string) (string, error) {
	if !validID(id) {
		return "", fmt.Errorf("artist %q: %w", id, ErrNotFound)
	}
	dir := r.ArtistDir(id)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("artist %s: %w", id, ErrNotFound)
	}
	return dir, nil
}

func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
