package laplacian

import (
	"fmt"

	"github.com/katalvlaran/laplacian/layout"
	"github.com/katalvlaran/laplacian/mask"
	"gonum.org/v1/gonum/mat"
)

// Filter is a spatial Laplacian filter instance. The zero value is usable
// and equivalent to New().
type Filter struct {
	layout    *layout.Layout
	nchannels int
	mask      *mat.Dense
	ready     bool
}

// New returns a filter with no layout and no mask; Apply fails with
// ErrMaskNotReady until a configuration succeeds.
func New() *Filter {
	return &Filter{}
}

// Configure reads ParamLayout and ParamNChannels from p and rebuilds the mask.
//
// Steps:
//  1. ParamLayout missing (absent or nil) → ErrMissingParameter.
//  2. String layout: duplicate pre-pass (ErrDuplicateChannel), then
//     layout.Parse (ErrMalformedLayout). Grid layout: layout.New, no
//     duplicate check.
//  3. ParamNChannels missing (absent or nil) → N = highest index in the
//     layout and OutcomeChannelCountFallback; if the layout holds no positive
//     index, ErrMissingParameter. Present but not an integer →
//     ErrInvalidParameter. Either way N outside [1, mask.MaxChannels] →
//     ErrInvalidChannelCount.
//  4. Build the mask and commit layout, N, mask and ready together.
//
// On error nothing is committed.
func (f *Filter) Configure(p ParamStore) (Outcome, error) {
	raw, ok := lookup(p, ParamLayout)
	if !ok {
		return OutcomeConfigured, fmt.Errorf("configure: %w: %q", ErrMissingParameter, ParamLayout)
	}
	l, err := layoutFromParam(raw)
	if err != nil {
		return OutcomeConfigured, fmt.Errorf("configure: %w", err)
	}

	outcome := OutcomeConfigured
	var n int
	if rawN, ok := lookup(p, ParamNChannels); ok {
		var isInt bool
		if n, isInt = toInt(rawN); !isInt {
			return OutcomeConfigured, fmt.Errorf("configure: %w: %q is %T", ErrInvalidParameter, ParamNChannels, rawN)
		}
	} else {
		n = l.MaxChannel()
		if n < 1 {
			return OutcomeConfigured, fmt.Errorf("configure: %w: %q not provided and layout holds no channel index",
				ErrMissingParameter, ParamNChannels)
		}
		outcome = OutcomeChannelCountFallback
	}
	if err = mask.ValidateChannelCount(n); err != nil {
		return OutcomeConfigured, fmt.Errorf("configure: %w", err)
	}

	if err = f.commit(l, n); err != nil {
		return OutcomeConfigured, fmt.Errorf("configure: %w", err)
	}
	return outcome, nil
}

// layoutFromParam turns the raw ParamLayout value into a Layout.
func layoutFromParam(raw any) (*layout.Layout, error) {
	if text, ok := raw.(string); ok {
		return parseChecked(text)
	}
	grid, err := GridFromParam(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidParameter, ParamLayout,
			fmt.Errorf("%w: %s", ErrMalformedLayout, err))
	}
	return layout.New(grid)
}

// parseChecked runs the duplicate pre-pass before parsing so each failure
// mode gets its own sentinel.
func parseChecked(text string) (*layout.Layout, error) {
	if layout.HasDuplicateChannel(text) {
		return nil, ErrDuplicateChannel
	}
	return layout.Parse(text)
}

// SetLayoutString parses text and rebuilds the mask for n channels.
// Errors: ErrDuplicateChannel, ErrMalformedLayout, ErrInvalidChannelCount.
func (f *Filter) SetLayoutString(text string, n int) error {
	l, err := parseChecked(text)
	if err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	if err = f.commit(l, n); err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	return nil
}

// SetLayout accepts a pre-built grid and rebuilds the mask for n channels.
// The grid must be rectangular; duplicated indices are the caller's concern.
// Errors: ErrMalformedLayout, ErrInvalidChannelCount.
func (f *Filter) SetLayout(grid [][]int, n int) error {
	l, err := layout.New(grid)
	if err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	if err = f.commit(l, n); err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	return nil
}

// commit builds the mask for (l, n) and, only on success, replaces the
// filter state.
func (f *Filter) commit(l *layout.Layout, n int) error {
	m, err := mask.Build(l, n)
	if err != nil {
		return err
	}
	f.layout, f.nchannels, f.mask, f.ready = l, n, m, true
	return nil
}

// SetMask injects a pre-computed mask (e.g. calibrated offline), bypassing
// layout-driven construction. The matrix is copied; the ready flag is set
// unconditionally and the channel count follows the mask's row count. The
// current layout, if any, is kept for inspection.
func (f *Filter) SetMask(m mat.Matrix) error {
	if m == nil {
		return fmt.Errorf("set mask: %w", ErrNilMask)
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return fmt.Errorf("set mask: %w: empty %dx%d matrix", ErrNilMask, r, c)
	}
	f.mask = mat.DenseCopyOf(m)
	f.nchannels, _ = f.mask.Dims()
	f.ready = true
	return nil
}

// Layout returns the current layout (immutable), or nil if none was set.
func (f *Filter) Layout() *layout.Layout { return f.layout }

// Mask returns a copy of the current mask, or nil if none was set.
func (f *Filter) Mask() *mat.Dense {
	if f.mask == nil {
		return nil
	}
	return mat.DenseCopyOf(f.mask)
}

// NChannels returns the current mask dimension (0 before configuration).
func (f *Filter) NChannels() int { return f.nchannels }

// Ready reports whether Apply may be called.
func (f *Filter) Ready() bool { return f.ready }

// Apply filters one frame: samples (T×N, time rows, channel columns) times
// the mask. It has no side effects on the filter.
// Errors: ErrMaskNotReady, ErrDimensionMismatch.
func (f *Filter) Apply(samples mat.Matrix) (*mat.Dense, error) {
	if !f.ready {
		return nil, ErrMaskNotReady
	}
	out, err := mask.Apply(samples, f.mask)
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	return out, nil
}
