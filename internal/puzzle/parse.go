// Package puzzle reads the text board of the burrow, builds the folded and unfolded variants and
// solves both with a searchers.Searcher.
package puzzle

import (
	"fmt"
	"strings"

	. "github.com/janpfeifer/amphipodGo/internal/state"
)

// Example is the small board used in the puzzle statement. Its folded variant costs 12521 and
// its unfolded variant 44169.
const Example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

// UnfoldRows are inserted, in order, after the first bay row by Unfold.
var UnfoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// bayTextColumn is the 0-based text column of the bay in the hallway and bay rows.
func bayTextColumn(bay int) int {
	return EntranceColumn(bay) + 1
}

func parseErrorf(line, column int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Column: column, Msg: fmt.Sprintf(format, args...)}
}

// splitLines splits the text and drops carriage returns and trailing empty lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for ii, line := range lines {
		lines[ii] = strings.TrimRight(line, "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// firstBoardLine returns the index of the top wall, skipping leading empty lines.
func firstBoardLine(lines []string) int {
	for ii, line := range lines {
		if strings.TrimSpace(line) != "" {
			return ii
		}
	}
	return len(lines)
}

// ParseBoard parses a text board: a top wall, the hallway line, one line per bay row and a
// closing wall. The depth of the returned State is the number of bay rows.
//
// Errors are always a *ParseError, with the 1-based line and column of the offending cell.
func ParseBoard(text string) (State, error) {
	lines := splitLines(text)
	top := firstBoardLine(lines)
	if len(lines)-top < 4 {
		return State{}, parseErrorf(len(lines)+1, 1, "board too short: want a wall, the hallway, at least one bay row and a closing wall")
	}
	if wall := strings.TrimSpace(lines[top]); wall == "" || strings.Trim(wall, "#") != "" {
		return State{}, parseErrorf(top+1, 1, "top wall should only have '#', got %q", lines[top])
	}

	// Bay rows run until the closing wall.
	hallwayIdx := top + 1
	var rows []int
	closed := false
	for lineIdx := hallwayIdx + 1; lineIdx < len(lines); lineIdx++ {
		line := lines[lineIdx]
		if len(line) > bayTextColumn(0) && line[bayTextColumn(0)] == '#' {
			closed = true
			break
		}
		rows = append(rows, lineIdx)
	}
	if !closed {
		return State{}, parseErrorf(len(lines)+1, 1, "missing closing wall below the bays")
	}
	if len(rows) < 1 || len(rows) > MaxDepth {
		return State{}, parseErrorf(hallwayIdx+2, 1, "found %d bay rows, it must be between 1 and %d", len(rows), MaxDepth)
	}
	s, err := NewState(len(rows))
	if err != nil {
		return State{}, parseErrorf(hallwayIdx+2, 1, "%v", err)
	}

	s, err = parseHallway(s, hallwayIdx+1, lines[hallwayIdx])
	if err != nil {
		return State{}, err
	}
	for depth, lineIdx := range rows {
		s, err = parseBayRow(s, lineIdx+1, depth, lines[lineIdx])
		if err != nil {
			return State{}, err
		}
	}
	if err = checkBoard(s, hallwayIdx+2); err != nil {
		return State{}, err
	}
	return s, nil
}

// parseHallway reads the hallway line, lineNum is 1-based.
func parseHallway(s State, lineNum int, line string) (State, error) {
	line = strings.TrimRight(line, " \t")
	if len(line) != HallwayWidth+2 || line[0] != '#' || line[HallwayWidth+1] != '#' {
		return s, parseErrorf(lineNum, 1, "hallway should have %d cells between walls, got %q", HallwayWidth, line)
	}
	slotAt := make(map[int]int, CorridorLen)
	for slot := range CorridorLen {
		slotAt[CorridorColumn(slot)] = slot
	}
	for col := range HallwayWidth {
		r := rune(line[col+1])
		if r == '.' {
			continue
		}
		c, err := ParseCategory(r)
		if err != nil {
			return s, parseErrorf(lineNum, col+2, "invalid hallway cell %q", r)
		}
		slot, ok := slotAt[col]
		if !ok {
			return s, parseErrorf(lineNum, col+2, "%s can't stand just outside a bay", c)
		}
		s = s.With(CorridorPos(slot), c)
	}
	return s, nil
}

// parseBayRow reads one row of the bays, lineNum is 1-based.
func parseBayRow(s State, lineNum, depth int, line string) (State, error) {
	for bay := range NumBays {
		col := bayTextColumn(bay)
		if len(line) <= col+1 {
			return s, parseErrorf(lineNum, len(line)+1, "bay row too short, got %q", line)
		}
		if line[col-1] != '#' || line[col+1] != '#' {
			return s, parseErrorf(lineNum, col, "bays must be separated by walls, got %q", line)
		}
		r := rune(line[col])
		if r == '.' {
			continue
		}
		c, err := ParseCategory(r)
		if err != nil {
			return s, parseErrorf(lineNum, col+1, "invalid bay cell %q", r)
		}
		s = s.With(BayPos(bay, depth), c)
	}
	return s, nil
}

// checkBoard validates the token counts and that no token sits above an empty bay slot.
// firstRowLine is the 1-based line number of the first bay row.
func checkBoard(s State, firstRowLine int) error {
	for bay := range NumBays {
		top := s.Top(bay)
		if top < 0 {
			continue
		}
		for depth := top; depth < s.Depth(); depth++ {
			if s.Bay(bay, depth) == NoCategory {
				return parseErrorf(firstRowLine+depth, bayTextColumn(bay)+1, "empty bay slot below a token")
			}
		}
	}
	counts := s.Counts()
	for _, c := range Categories {
		if counts[c] != s.Depth() {
			return parseErrorf(0, 0, "found %d tokens of %s, wanted %d (one per bay row)", counts[c], c, s.Depth())
		}
	}
	return nil
}

// Unfold inserts UnfoldRows after the first bay row of the text board.
func Unfold(text string) (string, error) {
	lines := splitLines(text)
	firstRow := firstBoardLine(lines) + 2
	if firstRow >= len(lines) {
		return "", parseErrorf(len(lines)+1, 1, "board too short to unfold")
	}
	unfolded := make([]string, 0, len(lines)+len(UnfoldRows))
	unfolded = append(unfolded, lines[:firstRow+1]...)
	unfolded = append(unfolded, UnfoldRows...)
	unfolded = append(unfolded, lines[firstRow+1:]...)
	return strings.Join(unfolded, "\n") + "\n", nil
}
