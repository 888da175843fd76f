package session

import (
	"github.com/jonathan/picture-match/internal/schemas"
	"github.com/jonathan/picture-match/internal/types"
	schemafiles "github.com/jonathan/picture-match/schemas"
)

// Assemble builds the session returned to the client. The solution map is
// only included for guided difficulties.
func Assemble(cells []types.Slot, items []types.Item, background string, d types.Difficulty, assignments map[string]types.Item) *types.Session {
	s := &types.Session{
		Background: background,
		Cells:      cells,
		Items:      items,
		LevelType:  types.LevelTypeFor(d.ExtraItems),
	}
	if s.Cells == nil {
		s.Cells = []types.Slot{}
	}
	if s.Items == nil {
		s.Items = []types.Item{}
	}

	if d.Guided {
		s.Solution = make(map[string]string, len(assignments))
		for _, c := range cells {
			if it, ok := assignments[c.ID]; ok {
				s.Solution[it.ID] = c.ID
			}
		}
	}
	return s
}

// Validate checks a session against the session JSON Schema.
func Validate(s *types.Session) error {
	return schemas.ValidateValue(schemafiles.Session, s)
}
