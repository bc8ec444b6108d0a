package projections

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"nbaweb/internal/dataframe"
)

// FileName is the projections file the R pipeline drops into the data
// directory.
const FileName = "projections.csv"

// ErrMissingFile reports that the projections file has not been generated
// yet. Callers render it differently from a parse failure.
var ErrMissingFile = errors.New("projections file not found")

// requiredColumns must be present for matchup derivation to work.
var requiredColumns = []string{"team_abbreviation", "opponent"}

// Set is one load of the projections file, ready for rendering.
type Set struct {
	// Columns preserves the CSV header order.
	Columns []string

	// Rows holds every projection row in file order, with float columns
	// rounded to one decimal place.
	Rows []dataframe.Row

	// Games lists each matchup once, in first-seen order, displayed with
	// the first occurrence's team/opponent orientation.
	Games []string

	// FloatColumns lists the columns that were rounded, in header order.
	FloatColumns []string
}

// Loader reads projection sets from a fixed directory. It keeps no state
// between loads; every call re-reads the file from disk.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at the given data directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the expected location of the projections file.
func (l *Loader) Path() string {
	return filepath.Join(l.dir, FileName)
}

// Load reads and transforms the projections file. A missing file yields
// ErrMissingFile; any read or parse failure is returned wrapped. On error
// no partial Set is returned.
func (l *Loader) Load() (*Set, error) {
	f, err := os.Open(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingFile
		}
		return nil, fmt.Errorf("open %s: %w", FileName, err)
	}
	defer f.Close()

	frame, err := dataframe.Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	for _, col := range requiredColumns {
		if !frame.HasColumn(col) {
			return nil, fmt.Errorf("%s: missing column %q", FileName, col)
		}
	}

	set := &Set{
		Columns: frame.Columns,
		Rows:    frame.Rows,
	}
	for _, col := range frame.Columns {
		if frame.Types[col] == dataframe.TypeFloat {
			set.FloatColumns = append(set.FloatColumns, col)
		}
	}
	roundFloats(set)
	set.Games = dedupeGames(frame.Rows)

	return set, nil
}

// roundFloats rounds every float column to one decimal place and rewrites
// the display text to show exactly one decimal. Integer and string columns
// pass through untouched.
func roundFloats(set *Set) {
	for _, row := range set.Rows {
		for _, col := range set.FloatColumns {
			cell, ok := row[col]
			if !ok || cell.Type != dataframe.TypeFloat {
				continue
			}
			cell.Num = math.Round(cell.Num*10) / 10
			cell.Raw = strconv.FormatFloat(cell.Num, 'f', 1, 64)
			row[col] = cell
		}
	}
}

// dedupeGames derives the matchup list. The dedup key is the sorted team
// pair, so "LAL vs BOS" and "BOS vs LAL" collapse to one entry, but the
// display string keeps the first occurrence's original orientation.
func dedupeGames(rows []dataframe.Row) []string {
	seen := make(map[[2]string]bool, len(rows))
	var games []string

	for _, row := range rows {
		team := row["team_abbreviation"].String()
		opp := row["opponent"].String()

		key := [2]string{team, opp}
		if opp < team {
			key = [2]string{opp, team}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		games = append(games, team+" vs "+opp)
	}

	return games
}
