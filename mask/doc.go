// Package mask builds and applies spatial Laplacian weight matrices.
//
// 🧠 What is a Laplacian mask?
//
//	For N channels placed on a grid, the mask is an N×N matrix whose column
//	c (channel c+1) re-references that channel against its grid neighbours:
//
//	  mask[c][c]   = 1
//	  mask[k-1][c] = -1/deg   for each neighbour k of channel c+1
//
//	so that (samples · mask)[t][c] = x_c(t) − mean(x_k(t) over neighbours).
//
// ✨ Column shapes:
//   - deg ≥ 1: column sums to 0 (ordinary Laplacian).
//   - deg == 0: degenerate column, self weight 1 only, output = input.
//   - not in layout: zero column, the channel's output is identically 0.
//
// Only neighbours holding a channel index in 1..N take part; cells beyond N
// (or negative) are ignored and do not count towards deg.
//
// ⚙️ Usage:
//
//	l, _ := layout.Parse("1 2 3; 4 5 6; 7 8 9")
//	m, _ := mask.Build(l, 9)
//	out, err := mask.Apply(samples, m) // samples: T×9
//
// Performance:
//
//   - Build: O(N·R·C) (one row-major Locate per channel), Memory O(N²).
//   - Apply: O(T·N²) via gonum's dense product.
package mask
