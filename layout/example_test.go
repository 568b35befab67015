// File: layout/example_test.go
package layout_test

import (
	"fmt"

	"github.com/katalvlaran/laplacian/layout"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse + Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates reading a textual montage and querying the
// 4-connected neighbourhood of a channel.
// Scenario:
//
//   - 3×3 grid, channel 5 in the centre.
//   - Neighbours are reported left, right, up, down.
func ExampleParse() {
	text := "1 2 3; 4 5 6; 7 8 9"
	if layout.HasDuplicateChannel(text) {
		fmt.Println("duplicated channel")
		return
	}
	l, err := layout.Parse(text)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pos, _ := l.Locate(5)
	fmt.Println("channel 5 at", pos)
	fmt.Println("neighbours:", l.Neighbors(pos.Row, pos.Col))

	// Output:
	// channel 5 at (1,1)
	// neighbours: [4 6 2 8]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleLayout_Components lists the electrode islands of a gapped montage.
func ExampleLayout_Components() {
	l, _ := layout.New([][]int{
		{1, 2, 0},
		{0, 0, 0},
		{3, 4, 5},
	})
	for i, comp := range l.Components() {
		fmt.Printf("island %d: %v\n", i, comp)
	}

	// Output:
	// island 0: [1 2]
	// island 1: [3 4 5]
}
