package template

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-studio/internal/label"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenAt(filepath.Join(t.TempDir(), "templates.json"))
	require.NoError(t, err)
	return s
}

func TestOpenSeedsDefaultTemplate(t *testing.T) {
	s := newTestStore(t)

	all := s.GetAll()
	require.Len(t, all, 1)

	seed := all[0]
	assert.Equal(t, "Default 50x30", seed.Name)
	assert.Equal(t, 50.0, seed.Width)
	assert.Equal(t, 30.0, seed.Height)
	assert.True(t, seed.IsDefault)
	require.Len(t, seed.Elements, 2)
	assert.Equal(t, label.BindingName, seed.Elements[0].Binding)
	assert.Equal(t, label.BindingSKU, seed.Elements[1].Binding)
}

func TestGetByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByID("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	s := newTestStore(t)

	tmpl, err := label.NewTemplate("Shelf", 60, 40)
	require.NoError(t, err)

	created, err := s.Create(tmpl)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shelf", got.Name)
}

func TestCreateRejectsInvalid(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(&label.Template{Name: "", Width: 10, Height: 10})
	assert.Error(t, err)

	_, err = s.Create(&label.Template{Name: "x", Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestUpdateByID(t *testing.T) {
	s := newTestStore(t)
	seed := s.GetAll()[0]

	name := "Renamed"
	els := []*label.Element{label.NewElement(label.ElementText)}
	updated, err := s.UpdateByID(seed.ID, Update{Name: &name, Elements: &els})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	require.Len(t, updated.Elements, 1)
	assert.True(t, updated.UpdatedAt.After(seed.UpdatedAt) || updated.UpdatedAt.Equal(seed.UpdatedAt))

	// Unset fields are unchanged
	assert.Equal(t, seed.Width, updated.Width)

	_, err = s.UpdateByID("missing", Update{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnknownIsNoOp(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Delete("missing"))
	assert.Len(t, s.GetAll(), 1)
}

func TestDuplicate(t *testing.T) {
	s := newTestStore(t)
	seed := s.GetAll()[0]

	dup, err := s.Duplicate(seed.ID)
	require.NoError(t, err)
	assert.Equal(t, seed.Name+" (copy)", dup.Name)
	assert.NotEqual(t, seed.ID, dup.ID)
	assert.False(t, dup.IsDefault)
	assert.Len(t, dup.Elements, len(seed.Elements))

	// Elements are copied with their ids; mutating the copy must not touch
	// the original.
	els := []*label.Element{}
	_, err = s.UpdateByID(dup.ID, Update{Elements: &els})
	require.NoError(t, err)

	orig, err := s.GetByID(seed.ID)
	require.NoError(t, err)
	assert.Len(t, orig.Elements, 2)

	_, err = s.Duplicate("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetDefaultIsExclusive(t *testing.T) {
	s := newTestStore(t)
	seed := s.GetAll()[0]

	tmpl, _ := label.NewTemplate("Second", 40, 20)
	second, err := s.Create(tmpl)
	require.NoError(t, err)

	require.NoError(t, s.SetDefault(second.ID))
	assert.Equal(t, second.ID, s.Default().ID)

	old, err := s.GetByID(seed.ID)
	require.NoError(t, err)
	assert.False(t, old.IsDefault)

	assert.ErrorIs(t, s.SetDefault("missing"), ErrNotFound)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	s, err := OpenAt(path)
	require.NoError(t, err)

	tmpl, _ := label.NewTemplate("Persistent", 70, 35)
	created, err := s.Create(tmpl)
	require.NoError(t, err)

	reopened, err := OpenAt(path)
	require.NoError(t, err)

	got, err := reopened.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persistent", got.Name)
	assert.Len(t, reopened.GetAll(), 2)
}

func TestLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	s1, err := OpenAt(path)
	require.NoError(t, err)
	s2, err := OpenAt(path)
	require.NoError(t, err)

	id := s1.GetAll()[0].ID

	nameA := "Session A"
	_, err = s1.UpdateByID(id, Update{Name: &nameA})
	require.NoError(t, err)

	nameB := "Session B"
	_, err = s2.UpdateByID(id, Update{Name: &nameB})
	require.NoError(t, err)

	// The second session's write is the surviving state on disk.
	reopened, err := OpenAt(path)
	require.NoError(t, err)
	got, err := reopened.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Session B", got.Name)
}

func TestGetAllReturnsClones(t *testing.T) {
	s := newTestStore(t)

	s.GetAll()[0].Name = "mutated"
	assert.NotEqual(t, "mutated", s.GetAll()[0].Name)
}
