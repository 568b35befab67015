// Package layout describes the spatial arrangement of signal channels as a
// rectangular grid of channel indices and answers geometric questions about it.
//
// What:
//
//   - Layout wraps a rectangular [][]int grid; 0 marks an empty slot, positive
//     values are 1-based channel indices.
//   - Parse reads the textual grid syntax: rows separated by ';', cells by
//     arbitrary whitespace, e.g. "0 1 0; 2 3 4; 0 5 0".
//   - HasDuplicateChannel / CheckDuplicates reject a channel placed twice.
//   - Locate, Neighbors and Components answer "where is channel k", "who is
//     around it" and "which electrodes form contiguous islands".
//
// Why:
//
//   - EEG caps: derive surface Laplacian weights from the montage.
//   - Sensor arrays: any 4-connected rectangular placement with gaps.
//
// Neighbour order:
//
//	Neighbors always reports left, right, up, down, skipping cells outside
//	the grid and empty (0) cells. Downstream weights are summed in exactly
//	this order, so it is part of the contract.
//
// Complexity:
//
//   - Parse, New:   O(R×C) time and memory.
//   - Locate:       O(R×C) worst case (row-major scan).
//   - Neighbors:    O(1).
//   - Components:   O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrMalformedLayout: umbrella for every syntax/shape failure.
//   - ErrEmptyLayout: no rows or no columns (also ErrMalformedLayout).
//   - ErrNonRectangular: rows of differing lengths (also ErrMalformedLayout).
//   - ErrDuplicateChannel: the same channel index occupies two cells.
package layout
