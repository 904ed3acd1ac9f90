package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
)

// ImportResult summarizes a batch import of custom formats. Invalid
// elements are rejected and reported, never silently skipped; valid
// elements are still imported and counted, but Success is true only
// when every element validated.
type ImportResult struct {
	Success  bool                  `json:"success"`
	Imported int                   `json:"imported"`
	Formats  []domain.CustomFormat `json:"-"`
	Errors   []string              `json:"errors"`
}

// ExportFormats serializes the format list to a JSON array. All fields
// round-trip through ImportFormats.
func ExportFormats(formats []domain.CustomFormat) ([]byte, error) {
	if formats == nil {
		formats = []domain.CustomFormat{}
	}
	data, err := json.MarshalIndent(formats, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding formats: %w", err)
	}
	return data, nil
}

// ImportFormats parses a JSON array of custom formats and re-validates
// every element independently. Malformed payloads (non-JSON, non-array)
// fail with an error; per-element validation failures are reported in
// the result.
func ImportFormats(data []byte) (ImportResult, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, fmt.Errorf("Invalid JSON format: %w", err)
	}
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return ImportResult{}, fmt.Errorf("expected an array of custom formats")
	}

	var formats []domain.CustomFormat
	if err := json.Unmarshal(data, &formats); err != nil {
		return ImportResult{}, fmt.Errorf("Invalid JSON format: %w", err)
	}

	result := ImportResult{}
	for i, f := range formats {
		validation := Validate(f.Template)
		if !validation.IsValid {
			label := f.Name
			if label == "" {
				label = fmt.Sprintf("format[%d]", i)
			}
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: %s", label, strings.Join(validation.Errors, "; ")))
			continue
		}
		f.Valid = true
		if len(f.Slots) == 0 {
			f.Slots = append([]domain.SlotKey(nil), domain.SlotOrder...)
		}
		result.Formats = append(result.Formats, f)
		result.Imported++
	}

	result.Success = result.Imported > 0 && len(result.Errors) == 0
	return result, nil
}
