package filter

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/katalvlaran/laplacian/laplacian"
	"github.com/katalvlaran/laplacian/layout"
	"gonum.org/v1/gonum/mat"
)

// Filter is the contract a pipeline host drives.
type Filter interface {
	Name() string
	Configure(p laplacian.ParamStore) (laplacian.Outcome, error)
	Apply(samples mat.Matrix) (*mat.Dense, error)
}

// Laplacian adapts *laplacian.Filter to Filter, adding logging and
// reader/writer locking around the core state.
type Laplacian struct {
	mu     sync.RWMutex
	core   *laplacian.Filter
	name   string
	logger *slog.Logger
}

var _ Filter = (*Laplacian)(nil)

// NewLaplacian returns an unconfigured adapter.
func NewLaplacian(opts ...Option) *Laplacian {
	o := gatherOptions(opts)
	return &Laplacian{
		core:   laplacian.New(),
		name:   o.name,
		logger: o.logger.With(slog.String("filter", o.name)),
	}
}

// Core returns the wrapped filter. It is not guarded by the adapter's lock.
func (f *Laplacian) Core() *laplacian.Filter { return f.core }

// Name returns the filter name.
func (f *Laplacian) Name() string { return f.name }

// Configure rebuilds the mask from p under the write lock. Failures are
// logged at error level and returned unchanged; the channel-count fallback
// is logged at warn level and returned as the outcome.
func (f *Laplacian) Configure(p laplacian.ParamStore) (laplacian.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	outcome, err := f.core.Configure(p)
	if err != nil {
		f.logger.Error(describe(err), slog.Any("error", err))
		return outcome, err
	}
	if outcome == laplacian.OutcomeChannelCountFallback {
		f.logger.Warn("number of channels not provided: assuming it equals the highest index in the layout",
			slog.Int("nchannels", f.core.NChannels()))
	}
	f.logConfigured()
	return outcome, nil
}

// SetLayoutString replaces the layout from text under the write lock.
func (f *Laplacian) SetLayoutString(text string, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.core.SetLayoutString(text, n); err != nil {
		f.logger.Error(describe(err), slog.Any("error", err))
		return err
	}
	f.logConfigured()
	return nil
}

// SetLayout replaces the layout from a pre-built grid under the write lock.
func (f *Laplacian) SetLayout(grid [][]int, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.core.SetLayout(grid, n); err != nil {
		f.logger.Error(describe(err), slog.Any("error", err))
		return err
	}
	f.logConfigured()
	return nil
}

// SetMask injects a pre-built mask under the write lock.
func (f *Laplacian) SetMask(m mat.Matrix) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.core.SetMask(m); err != nil {
		f.logger.Error("cannot set laplacian mask", slog.Any("error", err))
		return err
	}
	f.logger.Info("laplacian mask injected", slog.Int("nchannels", f.core.NChannels()))
	return nil
}

// Layout returns the current layout.
func (f *Laplacian) Layout() *layout.Layout {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.core.Layout()
}

// Mask returns a copy of the current mask.
func (f *Laplacian) Mask() *mat.Dense {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.core.Mask()
}

// NChannels returns the current mask dimension.
func (f *Laplacian) NChannels() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.core.NChannels()
}

// Ready reports whether Apply may be called.
func (f *Laplacian) Ready() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.core.Ready()
}

// Apply filters one frame under the read lock. Concurrent Apply calls
// proceed in parallel; configuration waits for them.
func (f *Laplacian) Apply(samples mat.Matrix) (*mat.Dense, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out, err := f.core.Apply(samples)
	if err != nil {
		f.logger.Error(describe(err), slog.Any("error", err))
		return nil, err
	}
	return out, nil
}

// logConfigured records the new geometry; callers hold the write lock.
func (f *Laplacian) logConfigured() {
	l := f.core.Layout()
	f.logger.Info("laplacian mask created",
		slog.Int("nchannels", f.core.NChannels()),
		slog.Int("rows", l.Rows()),
		slog.Int("cols", l.Cols()))
	if comps := l.Components(); len(comps) > 1 {
		f.logger.Debug("layout is split into separate islands", slog.Int("islands", len(comps)))
	}
}

// describe maps a core sentinel onto a one-line operator message.
func describe(err error) string {
	switch {
	case errors.Is(err, laplacian.ErrMissingParameter):
		return "cannot find required parameter"
	case errors.Is(err, laplacian.ErrDuplicateChannel):
		return "the provided layout has duplicated indexes"
	case errors.Is(err, laplacian.ErrMalformedLayout):
		return "the provided layout is wrongly formatted"
	case errors.Is(err, laplacian.ErrInvalidParameter), errors.Is(err, laplacian.ErrInvalidChannelCount):
		return "invalid parameter value"
	case errors.Is(err, laplacian.ErrMaskNotReady):
		return "laplacian mask is not set"
	case errors.Is(err, laplacian.ErrDimensionMismatch):
		return "frame does not match the mask"
	default:
		return "cannot create laplacian mask"
	}
}
