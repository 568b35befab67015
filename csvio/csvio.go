package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors.
var (
	// ErrEmptyInput indicates a CSV stream with no data rows.
	ErrEmptyInput = errors.New("csvio: no samples")
	// ErrBadValue indicates a cell that is not a float.
	ErrBadValue = errors.New("csvio: bad value")
	// ErrRagged indicates rows of differing widths.
	ErrRagged = errors.New("csvio: rows have different widths")
)

// Reader streams fixed-size frames from a CSV source.
type Reader struct {
	r     *csv.Reader
	width int
	line  int
}

// NewReader wraps src. Lines starting with '#' are skipped, and cells may
// carry surrounding spaces.
func NewReader(src io.Reader) *Reader {
	r := csv.NewReader(src)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true
	return &Reader{r: r}
}

// Width returns the channel count seen so far (0 before the first row).
func (r *Reader) Width() int { return r.width }

// Next returns up to frame rows as a T×N matrix. It returns io.EOF once the
// source is exhausted and no rows were read.
func (r *Reader) Next(frame int) (*mat.Dense, error) {
	if frame < 1 {
		frame = 1
	}
	var data []float64
	rows := 0
	for rows < frame {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: %w", err)
		}
		r.line++
		if r.width == 0 {
			r.width = len(rec)
		}
		if len(rec) != r.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRagged, r.line, len(rec), r.width)
		}
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %w", ErrBadValue, r.line, j+1, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, io.EOF
	}
	return mat.NewDense(rows, r.width, data), nil
}

// ReadMatrix reads the whole stream into one T×N matrix.
func ReadMatrix(src io.Reader) (*mat.Dense, error) {
	rd := NewReader(src)
	var data []float64
	rows := 0
	for {
		m, err := rd.Next(256)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		r, _ := m.Dims()
		data = append(data, m.RawMatrix().Data...)
		rows += r
	}
	if rows == 0 {
		return nil, ErrEmptyInput
	}
	return mat.NewDense(rows, rd.Width(), data), nil
}

// WriteMatrix writes m as CSV, one row per matrix row, using the shortest
// decimal form that round-trips.
func WriteMatrix(dst io.Writer, m mat.Matrix) error {
	w := csv.NewWriter(dst)
	r, c := m.Dims()
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("csvio: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csvio: %w", err)
	}
	return nil
}
