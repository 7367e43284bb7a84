// Package codec: flat JSON round-trip for OrbitDict.
package codec

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gmap/core"
)

// flatDict is the wire schema of a serialized orbit dictionary.
type flatDict struct {
	Indices []int                  `json:"indices"`
	Map     map[string]interface{} `json:"map"`
}

// MarshalOrbitDict encodes od into its flat JSON form: the alpha
// subset as an explicit index list (bounded by MaxDimension) plus the
// raw per-dart entries. Values must be JSON-encodable.
// Complexity: O(|entries|).
func MarshalOrbitDict(od *core.OrbitDict) ([]byte, error) {
	values := od.InternalValues()
	out := flatDict{
		Indices: od.Indices().Indices(core.MaxDimension),
		Map:     make(map[string]interface{}, len(values)),
	}
	for d, v := range values {
		out.Map[strconv.Itoa(int(d))] = v
	}

	return json.Marshal(out)
}

// UnmarshalOrbitDict decodes a flat JSON dictionary. Dart keys must be
// non-negative integers (ErrBadNumbering); values round-trip as the
// generic JSON types. Orbit consistency is the owning map's concern —
// pair the result with a map validated by UnmarshalMap.
// Complexity: O(|entries|).
func UnmarshalOrbitDict(data []byte) (*core.OrbitDict, error) {
	var in flatDict
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}

	values := make(map[core.Dart]interface{}, len(in.Map))
	for key, v := range in.Map {
		num, err := strconv.Atoi(key)
		if err != nil || num < 0 {
			return nil, fmt.Errorf("%w: dart key %q", ErrBadNumbering, key)
		}
		values[core.Dart(num)] = v
	}

	return core.RestoreOrbitDict(core.AlphasFromIndices(in.Indices...), values), nil
}
