// Package filter is the host-facing boundary of the Laplacian filter.
//
// It wraps a *laplacian.Filter with what a signal pipeline host needs and
// the core deliberately leaves out:
//
//   - a name and structured logging (log/slog) of configuration failures
//     and of the channel-count fallback;
//   - a sync.RWMutex so configuration (exclusive) never interleaves with
//     Apply (shared);
//   - YAML loading of the named parameters:
//
//	name: laplacian
//	params:
//	  layout: "1 2 3; 4 5 6; 7 8 9"   # or a YAML sequence of sequences
//	  nchannels: 9                    # optional
//
// Errors returned by the adapter are the core's sentinels, unchanged, so
// hosts keep matching them with errors.Is.
package filter
