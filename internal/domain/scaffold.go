package domain

import (
	"fmt"
	"strings"
)

// SlotKey identifies one of the seven fixed scaffold slots.
type SlotKey string

const (
	SlotSubject     SlotKey = "S"
	SlotContext     SlotKey = "C"
	SlotStyle       SlotKey = "St"
	SlotComposition SlotKey = "Co"
	SlotLighting    SlotKey = "L"
	SlotAtmosphere  SlotKey = "A"
	SlotQuality     SlotKey = "Q"
)

// SlotOrder is the canonical slot ordering. A scaffold always carries
// exactly these seven slots in this order.
var SlotOrder = []SlotKey{
	SlotSubject, SlotContext, SlotStyle, SlotComposition,
	SlotLighting, SlotAtmosphere, SlotQuality,
}

// SlotNames maps each slot key to its human-readable name.
var SlotNames = map[SlotKey]string{
	SlotSubject:     "Subject",
	SlotContext:     "Context",
	SlotStyle:       "Style",
	SlotComposition: "Composition",
	SlotLighting:    "Lighting",
	SlotAtmosphere:  "Atmosphere",
	SlotQuality:     "Quality",
}

var slotDescriptions = map[SlotKey]string{
	SlotSubject:     "The main subject of the image",
	SlotContext:     "Setting, background, and surrounding elements",
	SlotStyle:       "Artistic style or medium",
	SlotComposition: "Framing, camera angle, and layout",
	SlotLighting:    "Light sources and their qualities",
	SlotAtmosphere:  "Mood and emotional tone",
	SlotQuality:     "Rendering quality and technical modifiers",
}

// requiredSlots marks the slots that must be filled before a prompt
// can be built. Only Subject and Style are required by default.
var requiredSlots = map[SlotKey]bool{
	SlotSubject: true,
	SlotStyle:   true,
}

// IsValidSlotKey returns true if key is one of the seven scaffold keys.
func IsValidSlotKey(key SlotKey) bool {
	_, ok := SlotNames[key]
	return ok
}

// ScaffoldSlot is one named field of a prompt scaffold.
type ScaffoldSlot struct {
	Key         SlotKey
	Name        string
	Content     string
	Required    bool
	Description string
}

// Blank reports whether the slot content is empty after trimming.
func (s ScaffoldSlot) Blank() bool {
	return strings.TrimSpace(s.Content) == ""
}

// WordCount returns the number of whitespace-delimited words in the
// slot content.
func (s ScaffoldSlot) WordCount() int {
	return len(strings.Fields(s.Content))
}

// Scaffold is the fixed seven-slot decomposition of an image prompt.
// The slot set and order are invariant; only content changes.
type Scaffold struct {
	Slots []ScaffoldSlot
}

// NewScaffold creates an empty scaffold with all seven slots in
// canonical order.
func NewScaffold() Scaffold {
	slots := make([]ScaffoldSlot, 0, len(SlotOrder))
	for _, key := range SlotOrder {
		slots = append(slots, ScaffoldSlot{
			Key:         key,
			Name:        SlotNames[key],
			Required:    requiredSlots[key],
			Description: slotDescriptions[key],
		})
	}
	return Scaffold{Slots: slots}
}

// ErrInvalidSlotKey signals an update against a key that is not one of
// the seven scaffold slots. This is a caller bug, not a data error.
type ErrInvalidSlotKey struct {
	Key SlotKey
}

func (e *ErrInvalidSlotKey) Error() string {
	return fmt.Sprintf("invalid scaffold slot key %q (valid: S, C, St, Co, L, A, Q)", string(e.Key))
}

// UpdateSlot returns a new scaffold with only the slot matching key
// replaced by newContent. Slot order and count never change.
func (sc Scaffold) UpdateSlot(key SlotKey, newContent string) (Scaffold, error) {
	if !IsValidSlotKey(key) {
		return Scaffold{}, &ErrInvalidSlotKey{Key: key}
	}
	updated := sc.Clone()
	for i := range updated.Slots {
		if updated.Slots[i].Key == key {
			updated.Slots[i].Content = newContent
			break
		}
	}
	return updated, nil
}

// Clone returns an owned copy of the scaffold.
func (sc Scaffold) Clone() Scaffold {
	slots := make([]ScaffoldSlot, len(sc.Slots))
	copy(slots, sc.Slots)
	return Scaffold{Slots: slots}
}

// Validate reports whether every required slot has non-blank content.
func (sc Scaffold) Validate() bool {
	for _, s := range sc.Slots {
		if s.Required && s.Blank() {
			return false
		}
	}
	return true
}

// ToMap returns a key-to-content mapping for renderers. Empty contents
// are preserved so templates can detect missing slots.
func (sc Scaffold) ToMap() map[SlotKey]string {
	m := make(map[SlotKey]string, len(sc.Slots))
	for _, s := range sc.Slots {
		m[s.Key] = s.Content
	}
	return m
}

// Slot returns the slot with the given key. The second return is false
// for unknown keys.
func (sc Scaffold) Slot(key SlotKey) (ScaffoldSlot, bool) {
	for _, s := range sc.Slots {
		if s.Key == key {
			return s, true
		}
	}
	return ScaffoldSlot{}, false
}

// EmptySlots returns the slots whose content is blank after trimming.
func (sc Scaffold) EmptySlots() []ScaffoldSlot {
	var out []ScaffoldSlot
	for _, s := range sc.Slots {
		if s.Blank() {
			out = append(out, s)
		}
	}
	return out
}

// FilledSlots returns the slots with non-blank content.
func (sc Scaffold) FilledSlots() []ScaffoldSlot {
	var out []ScaffoldSlot
	for _, s := range sc.Slots {
		if !s.Blank() {
			out = append(out, s)
		}
	}
	return out
}
