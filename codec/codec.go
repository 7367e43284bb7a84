// Package codec: flat JSON round-trip for DartMap.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gmap/core"
)

// Sentinel errors for serialized-table schema violations. All are
// surfaced before any validity check runs.
var (
	// ErrBadTable indicates malformed JSON or an alpha row whose width
	// differs from dimension+1.
	ErrBadTable = errors.New("codec: malformed map table")

	// ErrBadNumbering indicates a dart key that is not a non-negative
	// integer, or numbering that is not contiguous from 0.
	ErrBadNumbering = errors.New("codec: bad dart numbering")

	// ErrDanglingDart indicates an alpha entry referencing a dart number
	// absent from the table.
	ErrDanglingDart = errors.New("codec: alpha references missing dart")
)

// flatMap is the wire schema of a serialized map.
type flatMap struct {
	Dimension int              `json:"dimension"`
	Alpha     map[string][]int `json:"alpha"`
}

// MarshalMap encodes m into its flat JSON form: one alpha row per
// dart, keyed by dart number. Complexity: O(|darts|·d).
func MarshalMap(m *core.DartMap) ([]byte, error) {
	out := flatMap{
		Dimension: m.Dimension(),
		Alpha:     make(map[string][]int, m.NDarts()),
	}
	for _, d := range m.Darts() {
		row := make([]int, m.Dimension()+1)
		for i := range row {
			row[i] = int(m.Alpha(d, i))
		}
		out.Alpha[strconv.Itoa(int(d))] = row
	}

	return json.Marshal(out)
}

// UnmarshalMap decodes a flat JSON table back into a DartMap. Schema
// violations are rejected first (ErrBadTable, ErrBadNumbering,
// ErrDanglingDart); the reconstructed map is then mandatorily
// validated, so a table that parses but breaks an invariant comes back
// as core.ErrInvalidStructure.
// Complexity: O(|darts|·d²) including validation.
func UnmarshalMap(data []byte) (*core.DartMap, error) {
	var in flatMap
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	if in.Alpha == nil {
		return nil, fmt.Errorf("%w: missing alpha table", ErrBadTable)
	}

	n := len(in.Alpha)
	stride := in.Dimension + 1
	rows := make([][]int, n)
	for key, row := range in.Alpha {
		num, err := strconv.Atoi(key)
		if err != nil || num < 0 {
			return nil, fmt.Errorf("%w: dart key %q", ErrBadNumbering, key)
		}
		if num >= n {
			return nil, fmt.Errorf("%w: dart %d outside contiguous range [0,%d)", ErrBadNumbering, num, n)
		}
		if rows[num] != nil {
			return nil, fmt.Errorf("%w: duplicate dart %d", ErrBadNumbering, num)
		}
		if len(row) != stride {
			return nil, fmt.Errorf("%w: dart %d has %d alpha slots, expected %d",
				ErrBadTable, num, len(row), stride)
		}
		rows[num] = row
	}

	alpha := make([]core.Dart, 0, n*stride)
	for num, row := range rows {
		for i, ref := range row {
			if ref < 0 || ref >= n {
				return nil, fmt.Errorf("%w: dart %d alpha_%d → %d", ErrDanglingDart, num, i, ref)
			}
			alpha = append(alpha, core.Dart(ref))
		}
	}

	m, err := core.FromAlpha(in.Dimension, alpha)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	return m, nil
}
