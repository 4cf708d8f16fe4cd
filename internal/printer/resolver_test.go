package printer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-studio/internal/label"
)

func TestSelectTemplateResetsTarget(t *testing.T) {
	r := NewResolver()
	r.SelectTemplate(mustTemplate(t, 50, 30))
	require.NoError(t, r.SelectTarget("zebra-zd420"))
	require.NotNil(t, r.Target())

	r.SelectTemplate(mustTemplate(t, 40, 20))
	assert.Nil(t, r.Target())
	assert.False(t, r.CanPrint())
}

func TestAvailableTargetsFiltersByCompatibility(t *testing.T) {
	r := NewResolver()
	assert.Nil(t, r.AvailableTargets())

	// 50x30 fits every built-in target.
	r.SelectTemplate(mustTemplate(t, 50, 30))
	assert.Len(t, r.AvailableTargets(), 4)

	// 200mm wide exceeds every physical printer; only the virtual target
	// remains.
	r.SelectTemplate(mustTemplate(t, 200, 100))
	targets := r.AvailableTargets()
	require.Len(t, targets, 1)
	assert.Equal(t, "pdf-export", targets[0].ID)
}

func TestSelectTargetErrors(t *testing.T) {
	r := NewResolver()

	err := r.SelectTarget("zebra-zd420")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no template selected")

	r.SelectTemplate(mustTemplate(t, 50, 30))

	err = r.SelectTarget("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown print target")
	assert.Nil(t, r.Target())

	// 10mm wide is below the Zebra's 15mm minimum.
	r.SelectTemplate(mustTemplate(t, 10, 30))
	err = r.SelectTarget("zebra-zd420")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support")
	assert.Nil(t, r.Target())
}

func TestCanPrintRechecksCompatibility(t *testing.T) {
	r := NewResolver()
	tmpl := mustTemplate(t, 50, 30)
	r.SelectTemplate(tmpl)
	require.NoError(t, r.SelectTarget("zebra-zd420"))
	assert.True(t, r.CanPrint())

	// Resizing the template after target selection invalidates the pairing.
	tmpl.Width = 200
	assert.False(t, r.CanPrint())
}

func TestPrintWithoutSelection(t *testing.T) {
	r := NewResolver()

	_, err := Print(r, label.DefaultSampleRecord())
	assert.ErrorIs(t, err, ErrNotPrintable)

	r.SelectTemplate(mustTemplate(t, 50, 30))
	_, err = Print(r, label.DefaultSampleRecord())
	assert.ErrorIs(t, err, ErrNotPrintable)
}

func TestPrintToVirtualTarget(t *testing.T) {
	r := NewResolver()
	tmpl := mustTemplate(t, 50, 30)
	el := label.NewElement(label.ElementText)
	el.Content = "Hello"
	tmpl.Elements = append(tmpl.Elements, el)

	r.SelectTemplate(tmpl)
	require.NoError(t, r.SelectTarget("pdf-export"))

	path, err := Print(r, label.DefaultSampleRecord())
	require.NoError(t, err)
	defer os.RemoveAll(path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
