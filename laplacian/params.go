package laplacian

import (
	"fmt"
	"math"
)

// Parameter names read by Configure.
const (
	ParamLayout    = "layout"
	ParamNChannels = "nchannels"
)

// ParamStore is the host-side parameter registry Configure reads from.
type ParamStore interface {
	// Param returns the value stored under name and whether it is present.
	Param(name string) (any, bool)
}

// Params is a map-backed ParamStore. Values typically come from a decoded
// YAML/JSON document or are set programmatically.
type Params map[string]any

// Param implements ParamStore.
func (p Params) Param(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// lookup reads name from p, treating a stored nil ("nchannels: null" in
// YAML) the same as an absent key.
func lookup(p ParamStore, name string) (any, bool) {
	v, ok := p.Param(name)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// toInt accepts any integer kind and whole-valued floats (decoders often
// produce float64 for JSON numbers).
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return toInt(uint64(x))
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float32:
		return toInt(float64(x))
	case float64:
		if math.Trunc(x) != x || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, false
		}
		return int(x), true
	}
	return 0, false
}

// GridFromParam converts a pre-built grid parameter. Besides [][]int it
// accepts the nested []any produced by generic YAML/JSON decoding, with any
// integer kind or whole-valued float in the cells. The result is not checked
// for shape or duplicates.
func GridFromParam(v any) ([][]int, error) {
	switch g := v.(type) {
	case [][]int:
		return g, nil
	case []any:
		grid := make([][]int, len(g))
		for r, rowV := range g {
			row, ok := rowV.([]any)
			if !ok {
				if ints, isInts := rowV.([]int); isInts {
					grid[r] = ints
					continue
				}
				return nil, fmt.Errorf("row %d is %T, want a sequence", r, rowV)
			}
			grid[r] = make([]int, len(row))
			for c, cell := range row {
				n, ok := toInt(cell)
				if !ok {
					return nil, fmt.Errorf("cell (%d,%d) is %v, want an integer", r, c, cell)
				}
				grid[r][c] = n
			}
		}
		return grid, nil
	}
	return nil, fmt.Errorf("unsupported type %T", v)
}
