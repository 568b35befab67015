// Package laplacian owns the state of one spatial Laplacian filter: the
// channel layout, the channel count, the mask and the mask-ready flag.
//
// Lifecycle:
//
//	f := laplacian.New()                          // not ready
//	outcome, err := f.Configure(laplacian.Params{ // or SetLayoutString / SetLayout / SetMask
//	    "layout":    "1 2 3; 4 5 6; 7 8 9",
//	    "nchannels": 9,
//	})
//	out, err := f.Apply(samples)                  // samples · mask
//
// Configuration is all-or-nothing: a failed Configure/SetLayout* leaves the
// previous layout, mask and ready flag exactly as they were.
//
// Channel-count fallback:
//
//	When "nchannels" is absent, Configure derives N from the largest index in
//	the layout and returns OutcomeChannelCountFallback together with a nil
//	error. Hosts should surface it: channels above the derived N get no
//	column, and channels missing from the layout get zero columns.
//
// Concurrency:
//
//	A Filter is not safe for concurrent use. Serialize configuration against
//	Apply (see package filter for a locked host adapter).
package laplacian
