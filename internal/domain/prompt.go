package domain

import "time"

// GeneratedPrompt is an immutable snapshot of a built prompt. Updates
// produce a new value with Version incremented; stored outputs are
// never patched in place.
type GeneratedPrompt struct {
	ID               string
	Scaffold         Scaffold
	RawText          string
	FormattedOutputs map[string]string
	NegativePrompt   string
	SourceModel      string
	CreatedAt        time.Time
	Version          int
}

// Clone returns a deep copy that shares no mutable state with the
// receiver.
func (p GeneratedPrompt) Clone() GeneratedPrompt {
	cp := p
	cp.Scaffold = p.Scaffold.Clone()
	cp.FormattedOutputs = make(map[string]string, len(p.FormattedOutputs))
	for k, v := range p.FormattedOutputs {
		cp.FormattedOutputs[k] = v
	}
	return cp
}
