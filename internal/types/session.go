package types

// LevelType tells the client whether bonus distractors were requested.
type LevelType string

const (
	LevelStandard LevelType = "standard"
	LevelExtended LevelType = "extended"
)

// LevelTypeFor returns the level type for an extra-items flag.
func LevelTypeFor(extraItems bool) LevelType {
	if extraItems {
		return LevelExtended
	}
	return LevelStandard
}

// Session is one generated round. It is never persisted.
type Session struct {
	Background  string            `json:"background,omitempty"`
	Cells       []Slot            `json:"cells"`
	Items       []Item            `json:"items"`
	LevelType   LevelType         `json:"levelType"`
	Solution    map[string]string `json:"solution,omitempty"`
	Diagnostics *Diagnostics      `json:"diagnostics,omitempty"`
}

// Diagnostics reports recoverable shortfalls of a generation.
type Diagnostics struct {
	// UnfilledCells lists selected cells that got neither a match nor a joker.
	UnfilledCells []string `json:"unfilledCells,omitempty"`
	// DuplicateItems counts items repeated because the pool ran out.
	DuplicateItems int `json:"duplicateItems,omitempty"`
}

// Empty reports whether there is nothing to report.
func (d *Diagnostics) Empty() bool {
	return d == nil || (len(d.UnfilledCells) == 0 && d.DuplicateItems == 0)
}
