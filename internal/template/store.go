// Package template provides the local JSON store of label templates.
//
// Templates live outside the tenant database: the whole collection is one
// JSON array in the user config dir, rewritten on every save. Two sessions
// editing the same template resolve last-write-wins.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"label-studio/internal/label"
)

const storeFile = "templates.json"

// ErrNotFound is returned for lookups and updates on a missing template id.
var ErrNotFound = errors.New("template not found")

// Store is a CRUD store of label templates backed by a single JSON file.
type Store struct {
	mu        sync.RWMutex
	path      string
	templates []*label.Template
}

// Open loads the template store from ~/.config/label-studio/templates.json,
// seeding a default template when the store is empty or missing.
func Open() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return OpenAt(filepath.Join(configDir, "label-studio", storeFile))
}

// OpenAt loads the template store from an explicit path.
func OpenAt(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &s.templates); err != nil {
			return nil, fmt.Errorf("corrupt template store %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if len(s.templates) == 0 {
		s.templates = []*label.Template{seedTemplate()}
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// seedTemplate builds the default 50x30mm template created on first use:
// a text element bound to the product name and a QR element bound to the SKU.
func seedTemplate() *label.Template {
	now := time.Now()

	name := label.NewElement(label.ElementText)
	name.Binding = label.BindingName
	name.X, name.Y = 2, 2

	sku := label.NewElement(label.ElementQR)
	sku.Binding = label.BindingSKU
	sku.X, sku.Y = 2, 12
	sku.Width, sku.Height = 16, 16

	return &label.Template{
		ID:        uuid.NewString(),
		Name:      "Default 50x30",
		Width:     50,
		Height:    30,
		Elements:  []*label.Element{name, sku},
		CreatedAt: now,
		UpdatedAt: now,
		IsDefault: true,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// GetAll returns a snapshot of every stored template.
func (s *Store) GetAll() []*label.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*label.Template, len(s.templates))
	for i, t := range s.templates {
		out[i] = t.Clone()
	}
	return out
}

// GetByID returns the template with the given id.
func (s *Store) GetByID(id string) (*label.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Default returns the template flagged as default, or the first one.
func (s *Store) Default() *label.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.IsDefault {
			return t.Clone()
		}
	}
	if len(s.templates) > 0 {
		return s.templates[0].Clone()
	}
	return nil
}

// Create stores a new template, assigning its id and timestamps.
func (s *Store) Create(t *label.Template) (*label.Template, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := t.Clone()
	c.ID = uuid.NewString()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Elements == nil {
		c.Elements = []*label.Element{}
	}
	s.templates = append(s.templates, c)

	if err := s.save(); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Update describes a partial template mutation; nil fields are unchanged.
type Update struct {
	Name      *string
	Width     *float64
	Height    *float64
	Elements  *[]*label.Element
	IsDefault *bool
}

// UpdateByID applies a partial update to a stored template and refreshes its
// update timestamp. Returns ErrNotFound for an unknown id.
func (s *Store) UpdateByID(id string, upd Update) (*label.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.templates {
		if t.ID != id {
			continue
		}
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Width != nil {
			t.Width = *upd.Width
		}
		if upd.Height != nil {
			t.Height = *upd.Height
		}
		if upd.Elements != nil {
			t.Elements = label.CloneElements(*upd.Elements)
		}
		if upd.IsDefault != nil {
			t.IsDefault = *upd.IsDefault
		}
		t.UpdatedAt = time.Now()

		if err := s.save(); err != nil {
			return nil, err
		}
		return t.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes a template by id. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Duplicate stores a copy of an existing template under a new name.
func (s *Store) Duplicate(id string) (*label.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.templates {
		if t.ID != id {
			continue
		}
		c := t.Clone()
		c.ID = uuid.NewString()
		c.Name = t.Name + " (copy)"
		c.IsDefault = false
		now := time.Now()
		c.CreatedAt = now
		c.UpdatedAt = now
		s.templates = append(s.templates, c)

		if err := s.save(); err != nil {
			return nil, err
		}
		return c.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// SetDefault flags one template as the default and clears the flag on the
// others.
func (s *Store) SetDefault(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, t := range s.templates {
		if t.ID == id {
			t.IsDefault = true
			t.UpdatedAt = time.Now()
			found = true
		} else {
			t.IsDefault = false
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.save()
}

// save writes the whole collection to disk. Callers hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.templates, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
