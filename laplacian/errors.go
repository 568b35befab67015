package laplacian

import (
	"errors"

	"github.com/katalvlaran/laplacian/layout"
	"github.com/katalvlaran/laplacian/mask"
)

// Sentinel errors. Layout and mask sentinels are re-exported so hosts can
// match every configuration failure through this package alone.
var (
	// ErrMissingParameter indicates a required parameter (layout, or a
	// derivable channel count) is absent.
	ErrMissingParameter = errors.New("laplacian: missing parameter")

	// ErrInvalidParameter indicates a parameter of an unsupported type.
	ErrInvalidParameter = errors.New("laplacian: invalid parameter")

	// ErrMaskNotReady indicates Apply was called before any successful mask
	// construction or injection.
	ErrMaskNotReady = errors.New("laplacian: mask is not set")

	// ErrNilMask indicates SetMask received a nil matrix.
	ErrNilMask = errors.New("laplacian: mask is nil")

	ErrMalformedLayout     = layout.ErrMalformedLayout
	ErrDuplicateChannel    = layout.ErrDuplicateChannel
	ErrInvalidChannelCount = mask.ErrInvalidChannelCount
	ErrDimensionMismatch   = mask.ErrDimensionMismatch
)

// Outcome qualifies a successful configuration.
type Outcome int

const (
	// OutcomeConfigured: every parameter was supplied explicitly.
	OutcomeConfigured Outcome = iota
	// OutcomeChannelCountFallback: the channel count was derived from the
	// highest index in the layout.
	OutcomeChannelCountFallback
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeConfigured:
		return "configured"
	case OutcomeChannelCountFallback:
		return "channel-count-fallback"
	default:
		return "unknown"
	}
}
