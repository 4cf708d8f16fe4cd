package label

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRecognizedBindings(t *testing.T) {
	rec := SampleRecord{
		Name:        "Widget",
		SKU:         "W-100",
		Description: "A widget",
		SalePrice:   12.5,
	}

	require.Equal(t, "Widget", BindingName.Resolve(rec, "literal"))
	require.Equal(t, "W-100", BindingSKU.Resolve(rec, "literal"))
	require.Equal(t, "A widget", BindingDescription.Resolve(rec, "literal"))
	require.Equal(t, "12.50", BindingSalePrice.Resolve(rec, "literal"))
}

func TestResolveUnboundFallsBackToLiteral(t *testing.T) {
	rec := DefaultSampleRecord()

	require.Equal(t, "hello", BindingNone.Resolve(rec, "hello"))
	require.Equal(t, "hello", Binding("product.nonexistent").Resolve(rec, "hello"))
}

func TestRecognized(t *testing.T) {
	require.True(t, BindingSalePrice.Recognized())
	require.False(t, BindingNone.Recognized())
	require.False(t, Binding("bogus").Recognized())
}

func TestLoadSampleRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	data := `{"name":"Tea","sku":"T-1","description":"Loose leaf","sale_price":4.2}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	rec, err := LoadSampleRecord(path)
	require.NoError(t, err)
	require.Equal(t, "Tea", rec.Name)
	require.Equal(t, "T-1", rec.SKU)
	require.Equal(t, 4.2, rec.SalePrice)
}

func TestLoadSampleRecordErrors(t *testing.T) {
	_, err := LoadSampleRecord(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadSampleRecord(path)
	require.ErrorContains(t, err, "invalid sample record")
}
