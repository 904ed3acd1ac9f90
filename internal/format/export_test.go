package format

import (
	"testing"
	"time"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFormats() []domain.CustomFormat {
	return []domain.CustomFormat{
		{
			ID:        "f-1",
			Name:      "Default",
			Template:  DefaultTemplate,
			Valid:     true,
			Slots:     domain.SlotOrder,
			CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "f-2",
			Name:     "Verbose",
			Template: "{subject} in {context}, {style}, {composition}, {lighting}, {atmosphere}, {quality}",
			Valid:    true,
			Slots:    domain.SlotOrder,
		},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	original := sampleFormats()

	data, err := ExportFormats(original)
	require.NoError(t, err)

	result, err := ImportFormats(data)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, len(original), result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Formats, len(original))
	for i, f := range result.Formats {
		assert.Equal(t, original[i].ID, f.ID)
		assert.Equal(t, original[i].Name, f.Name)
		assert.Equal(t, original[i].Template, f.Template)
		assert.True(t, f.Valid)
	}
}

func TestImportFormats_NotJSON(t *testing.T) {
	_, err := ImportFormats([]byte("not json at all"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid JSON format")
}

func TestImportFormats_NotAnArray(t *testing.T) {
	_, err := ImportFormats([]byte(`{"id": "f-1"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an array")
}

func TestImportFormats_PartiallyValid(t *testing.T) {
	data := []byte(`[
		{"id": "f-1", "name": "Good", "template": "{S}, {C}, {St}, {Co}, {L}, {A}, {Q}"},
		{"id": "f-2", "name": "Bad", "template": "{S}, {C}"}
	]`)

	result, err := ImportFormats(data)
	require.NoError(t, err)

	// Valid elements are imported and counted; any invalid element
	// makes the batch unsuccessful.
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Bad")
}

func TestImportFormats_AllInvalid(t *testing.T) {
	data := []byte(`[
		{"id": "f-1", "name": "A", "template": ""},
		{"id": "f-2", "name": "B", "template": "{NOPE}"}
	]`)

	result, err := ImportFormats(data)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Zero(t, result.Imported)
	assert.Len(t, result.Errors, 2)
}

func TestImportFormats_EmptyArray(t *testing.T) {
	result, err := ImportFormats([]byte(`[]`))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Zero(t, result.Imported)
	assert.Empty(t, result.Errors)
}

func TestImportFormats_FillsMissingSlots(t *testing.T) {
	data := []byte(`[{"id": "f-1", "name": "NoSlots", "template": "{S}, {C}, {St}, {Co}, {L}, {A}, {Q}"}]`)

	result, err := ImportFormats(data)
	require.NoError(t, err)

	require.Len(t, result.Formats, 1)
	assert.Equal(t, domain.SlotOrder, result.Formats[0].Slots)
}
