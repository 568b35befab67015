// Package laplacian is a small toolkit for spatial Laplacian re-referencing
// of multichannel recordings (EEG and friends).
//
// 🚀 What is it?
//
//	A plain Go module, built on gonum, that turns a 2-D electrode layout
//	into an N×N mask and filters sample frames with it:
//		• Layouts: parse "1 2; 3 4" strings, check duplicates, walk neighbours
//		• Masks: build, plan, verify column invariants, apply
//		• Filter state: configure from named params, inject masks, apply frames
//		• Host boundary: YAML params, slog logging, RW locking
//		• CLI: stream CSV samples through a configured filter
//
// ✨ Why?
//
//   - One mask per layout, built once, applied per frame as a single product
//   - Sentinel errors everywhere, matched with errors.Is
//   - Reconfiguration is all-or-nothing: a failed call leaves the filter as it was
//
// Subpackages:
//
//	layout/        channel grid: Parse, New, Locate, Neighbors, Components
//	mask/          Plan, Build, Verify, Apply on gonum mat.Dense
//	laplacian/     Filter: Configure, SetLayout*, SetMask, Apply
//	filter/        host adapter: YAML config, logging, locking
//	csvio/         CSV frames in and out
//	cmd/laplacian/ command line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	channel 1 is re-referenced to the mean of channels 2 and 3:
//	    out1 = x1 - (x2 + x3)/2
//
//	go get github.com/katalvlaran/laplacian
package laplacian
