package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kravitexx/promptforge/internal/domain"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// timeToString formats a time for SQLite storage as RFC3339 UTC.
func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses an RFC3339 string from SQLite storage. A zero time
// is returned for malformed values rather than failing the whole scan.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// marshalSlots encodes a slot key list as a JSON array.
func marshalSlots(slots []domain.SlotKey) (string, error) {
	b, err := json.Marshal(slots)
	if err != nil {
		return "", fmt.Errorf("marshaling slots: %w", err)
	}
	return string(b), nil
}

// unmarshalSlots decodes a JSON slot key list.
func unmarshalSlots(raw string) ([]domain.SlotKey, error) {
	var slots []domain.SlotKey
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, fmt.Errorf("unmarshaling slots: %w", err)
	}
	return slots, nil
}

// marshalScaffold encodes scaffold contents as a JSON key-to-content map.
func marshalScaffold(sc domain.Scaffold) (string, error) {
	b, err := json.Marshal(sc.ToMap())
	if err != nil {
		return "", fmt.Errorf("marshaling scaffold: %w", err)
	}
	return string(b), nil
}

// unmarshalScaffold rebuilds a scaffold from its stored content map.
// Unknown keys in stored data are skipped so old rows never poison reads.
func unmarshalScaffold(raw string) (domain.Scaffold, error) {
	var contents map[domain.SlotKey]string
	if err := json.Unmarshal([]byte(raw), &contents); err != nil {
		return domain.Scaffold{}, fmt.Errorf("unmarshaling scaffold: %w", err)
	}
	sc := domain.NewScaffold()
	for key, content := range contents {
		updated, err := sc.UpdateSlot(key, content)
		if err != nil {
			continue
		}
		sc = updated
	}
	return sc, nil
}

// marshalOutputs encodes the per-format rendered outputs map.
func marshalOutputs(outputs map[string]string) (string, error) {
	if outputs == nil {
		outputs = map[string]string{}
	}
	b, err := json.Marshal(outputs)
	if err != nil {
		return "", fmt.Errorf("marshaling outputs: %w", err)
	}
	return string(b), nil
}

// unmarshalOutputs decodes the per-format rendered outputs map.
func unmarshalOutputs(raw string) (map[string]string, error) {
	var outputs map[string]string
	if err := json.Unmarshal([]byte(raw), &outputs); err != nil {
		return nil, fmt.Errorf("unmarshaling outputs: %w", err)
	}
	if outputs == nil {
		outputs = map[string]string{}
	}
	return outputs, nil
}
