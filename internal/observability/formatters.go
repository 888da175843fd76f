// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vyevs/ansi"

	"github.com/jonathan/picture-match/internal/difficulty"
	"github.com/jonathan/picture-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 12
)

const (
	colorMatched    = "green"
	colorJoker      = "yellow"
	colorDistractor = "cyan"
	colorUnfilled   = "red"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithColor enables or disables ANSI colours and returns the printer.
func (p *Printer) WithColor(enabled bool) *Printer {
	p.color = enabled
	return p
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return ansi.FGColorName(color) + s + ansi.Clear
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		pad := boxWidth - 4 - visibleLen(line)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// visibleLen counts runes outside ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			n++
		}
	}
	return n
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// PrintDifficulty outputs the resolved cell range and tray size.
func (p *Printer) PrintDifficulty(portalID string, variant types.Variant, mode types.GameMode, d types.Difficulty, trayTotal int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Portal:   %s\n", portalID))
	if variant != types.VariantNone {
		sb.WriteString(fmt.Sprintf("Variant:  %s\n", variant))
	}
	sb.WriteString(fmt.Sprintf("Mode:     %s\n", mode))
	sb.WriteString(fmt.Sprintf("Cells:    %d-%d\n", d.MinCells, d.MaxCells))
	sb.WriteString(fmt.Sprintf("Tray:     %d items", trayTotal))
	if d.ExtraItems {
		sb.WriteString(" (extra)")
	}
	if d.Guided {
		sb.WriteString("\nGuided:   yes")
	}

	p.printBox("RESOLVED DIFFICULTY", sb.String())
}

// PrintTotals outputs the configured tray sizes.
func (p *Printer) PrintTotals(t difficulty.Totals) {
	p.printBox("TRAY SIZES", fmt.Sprintf("Simple:   %d\nAdvanced: %d\nBonus:    +%d",
		t.Simple, t.Advanced, t.BonusDistractors))
}

// PrintSession outputs the selected cells with their assigned items, then
// the presented tray. Jokers, distractors and unfilled cells are highlighted.
func (p *Printer) PrintSession(s *types.Session, assignments map[string]types.Item) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level: %s    Cells: %d    Items: %d\n\n", s.LevelType, len(s.Cells), len(s.Items)))

	assigned := make(map[string]bool, len(assignments))
	for _, it := range assignments {
		assigned[it.ID] = true
	}

	count := min(len(s.Cells), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := s.Cells[i]
		codes := make([]string, len(c.RequiredCodes))
		for j, code := range c.RequiredCodes {
			codes[j] = string(code)
		}
		label := strings.Join(codes, "|")
		if c.Strict {
			label += "!"
		}

		it, ok := assignments[c.ID]
		switch {
		case !ok:
			sb.WriteString(fmt.Sprintf("  %-6s %-6s %s\n", c.ID, label, p.paint(colorUnfilled, "(unfilled)")))
		case it.IsJoker():
			sb.WriteString(fmt.Sprintf("  %-6s %-6s %s\n", c.ID, label, p.paint(colorJoker, truncate(it.ID+" (joker)", 30))))
		default:
			sb.WriteString(fmt.Sprintf("  %-6s %-6s %s\n", c.ID, label, p.paint(colorMatched, truncate(it.ID+" ["+string(it.Code)+"]", 30))))
		}
	}
	if len(s.Cells) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(s.Cells)-maxItemsToShow))
	}

	var distractors []string
	for _, it := range s.Items {
		if !assigned[it.ID] {
			distractors = append(distractors, it.ID)
		}
	}
	if len(distractors) > 0 {
		sort.Strings(distractors)
		sb.WriteString("\nDistractors:\n")
		for _, id := range distractors {
			sb.WriteString("  • " + p.paint(colorDistractor, truncate(id, 40)) + "\n")
		}
	}

	if !s.Diagnostics.Empty() {
		sb.WriteString("\nDiagnostics:\n")
		if n := len(s.Diagnostics.UnfilledCells); n > 0 {
			sb.WriteString(fmt.Sprintf("  unfilled cells: %d\n", n))
		}
		if s.Diagnostics.DuplicateItems > 0 {
			sb.WriteString(fmt.Sprintf("  duplicate items: %d\n", s.Diagnostics.DuplicateItems))
		}
	}

	p.printBox("GENERATED SESSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCheck outputs the result of a placement check.
func (p *Printer) PrintCheck(req *types.CheckRequest, resp types.CheckResponse) {
	codes := make([]string, len(req.RequiredCodes))
	for i, c := range req.RequiredCodes {
		codes[i] = string(c)
	}

	verdict := p.paint(colorUnfilled, "no match")
	if resp.Matches {
		kind := "hierarchical"
		switch {
		case resp.Joker:
			kind = "joker"
		case resp.Exact:
			kind = "exact"
		}
		verdict = p.paint(colorMatched, "match ("+kind+")")
	}

	p.printBox("PLACEMENT CHECK", fmt.Sprintf("Item:     %s\nSlot:     %s (strict: %t)\nResult:   %s",
		req.ItemCode, strings.Join(codes, ", "), req.Strict, verdict))
}
