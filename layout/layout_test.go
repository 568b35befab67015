package layout_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/laplacian/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, layout.ErrEmptyLayout},
		{"EmptyRows", [][]int{}, layout.ErrEmptyLayout},
		{"EmptyCols", [][]int{{}}, layout.ErrEmptyLayout},
		{"NonRectangular", [][]int{{1, 2}, {3}}, layout.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
			if !errors.Is(err, layout.ErrMalformedLayout) {
				t.Errorf("New(%v) error = %v; want it to match ErrMalformedLayout", tc.grid, err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	l, err := layout.New(grid)
	require.NoError(t, err)

	grid[0][0] = 99
	assert.Equal(t, 1, l.At(0, 0))

	out := l.Grid()
	out[1][1] = 42
	assert.Equal(t, 4, l.At(1, 1), "Grid must return a copy")
}

// TestNew_AllowsDuplicates documents that duplicate checking is the caller's job.
func TestNew_AllowsDuplicates(t *testing.T) {
	_, err := layout.New([][]int{{1, 1}})
	require.NoError(t, err)
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	l, err := layout.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Rows())
	assert.Equal(t, 3, l.Cols())

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !l.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, rc := range invalid {
		if l.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
		if got := l.At(rc[0], rc[1]); got != layout.Empty {
			t.Errorf("At(%d,%d)=%d; want Empty", rc[0], rc[1], got)
		}
	}
}

//----------------------------------------------------------------------------//
// Locate / Neighbors Tests
//----------------------------------------------------------------------------//

func mustParse(t *testing.T, text string) *layout.Layout {
	t.Helper()
	l, err := layout.Parse(text)
	require.NoError(t, err)
	return l
}

// TestLocate covers found, not-found and first-match behaviour.
func TestLocate(t *testing.T) {
	l := mustParse(t, "1 2 3; 4 5 6; 7 8 9")

	pos, ok := l.Locate(5)
	require.True(t, ok)
	assert.Equal(t, layout.Position{Row: 1, Col: 1}, pos)

	_, ok = l.Locate(10)
	assert.False(t, ok, "channel outside the grid must not be found")

	dup, err := layout.New([][]int{{0, 7}, {7, 0}})
	require.NoError(t, err)
	pos, ok = dup.Locate(7)
	require.True(t, ok)
	assert.Equal(t, layout.Position{Row: 0, Col: 1}, pos, "row-major scan returns the first match")
}

// TestNeighbors verifies the left, right, up, down order and the skipping rules.
func TestNeighbors(t *testing.T) {
	l := mustParse(t, "1 2 3; 4 5 6; 7 8 9")
	gapped := mustParse(t, "0 2 0; 4 5 0; 0 8 9")

	cases := []struct {
		name     string
		l        *layout.Layout
		row, col int
		want     []int
	}{
		{"AllSides", l, 1, 1, []int{4, 6, 2, 8}},
		{"Corner", l, 0, 0, []int{2, 4}},
		{"TopEdge", l, 0, 1, []int{1, 3, 5}},
		{"BottomRightCorner", l, 2, 2, []int{8, 6}},
		{"EmptySlotsSkipped", gapped, 1, 1, []int{4, 2, 8}},
		{"EmptyCellItself", gapped, 0, 0, []int{2, 4}},
		{"OutOfBounds", l, 3, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.l.Neighbors(tc.row, tc.col))
		})
	}
}

// TestNeighbors_ReturnsRawValues shows that indices beyond any channel count
// and negative values are still reported; filtering happens in the mask builder.
func TestNeighbors_ReturnsRawValues(t *testing.T) {
	l, err := layout.New([][]int{{1, 15, 30}, {16, 31, 17}, {-2, 33, 34}})
	require.NoError(t, err)
	assert.Equal(t, []int{15, 16}, l.Neighbors(0, 0))
	assert.Equal(t, []int{33, 16}, l.Neighbors(2, 0))
}

// TestMaxChannelAndChannels checks the derived channel statistics.
func TestMaxChannelAndChannels(t *testing.T) {
	l := mustParse(t, "0 0 3; 12 0 1; 0 -4 2")
	assert.Equal(t, 12, l.MaxChannel())
	assert.Equal(t, []int{1, 2, 3, 12}, l.Channels())

	empty, err := layout.New([][]int{{0, 0}, {0, -1}})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.MaxChannel())
	assert.Empty(t, empty.Channels())
}

// TestString_RoundTrip ensures String produces text that Parse accepts back.
func TestString_RoundTrip(t *testing.T) {
	grid := [][]int{{0, 0, 1, 0, 2}, {4, 20, 5, 21, 6}, {-1, 15, 0, 16, 31}}
	l, err := layout.New(grid)
	require.NoError(t, err)

	back, err := layout.Parse(l.String())
	require.NoError(t, err)
	assert.Equal(t, grid, back.Grid())
	assert.Equal(t, "0 0 1 0 2;\n4 20 5 21 6;\n-1 15 0 16 31", l.String())
}

// TestGrid_CopyIsDetached edits the returned grid and checks the layout
// still reports its original cells.
func TestGrid_CopyIsDetached(t *testing.T) {
	l := mustParse(t, "1 2; 3 4")
	g := l.Grid()
	g[0][1] = 0
	g[1] = []int{9, 9}

	assert.Equal(t, 2, l.At(0, 1))
	assert.Equal(t, 3, l.At(1, 0))
	assert.Equal(t, []int{2, 3}, l.Neighbors(0, 0))
	assert.Equal(t, "1 2;\n3 4", l.String())
}
