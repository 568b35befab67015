package csvio_test

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/katalvlaran/laplacian/csvio"
	"github.com/katalvlaran/laplacian/laplacian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestReadMatrix_Fixture(t *testing.T) {
	fh, err := os.Open("testdata/ramp4.csv")
	require.NoError(t, err)
	defer fh.Close()

	m, err := csvio.ReadMatrix(fh)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, []float64{0, 0, 0, 8}, mat.Row(nil, 2, m))
}

func TestReadMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"Empty", "", csvio.ErrEmptyInput},
		{"OnlyComments", "# nothing\n", csvio.ErrEmptyInput},
		{"Ragged", "1,2\n3\n", csvio.ErrRagged},
		{"BadValue", "1,x\n", csvio.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvio.ReadMatrix(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	in := mat.NewDense(2, 3, []float64{0.1, -2, 3e-9, 1.0 / 3, 0, 42})
	var buf bytes.Buffer
	require.NoError(t, csvio.WriteMatrix(&buf, in))

	out, err := csvio.ReadMatrix(&buf)
	require.NoError(t, err)
	assert.True(t, mat.Equal(in, out))
}

func TestReader_Frames(t *testing.T) {
	rd := csvio.NewReader(strings.NewReader("1,2\n3,4\n5,6\n"))

	first, err := rd.Next(2)
	require.NoError(t, err)
	r, _ := first.Dims()
	assert.Equal(t, 2, r)

	second, err := rd.Next(2)
	require.NoError(t, err)
	r, _ = second.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, []float64{5, 6}, mat.Row(nil, 0, second))

	_, err = rd.Next(2)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, rd.Width())
}

const montage32 = " 0   0   1   0   2   0   0;\n" +
	" 0   0   0   0   0   0   0;\n" +
	" 0   0  18   3  19   0   0;\n" +
	" 4  20   5  21   6  22   7;\n" +
	"23   8  24   9  25  10  26;\n" +
	"11  27  12   0  13  28  14;\n" +
	"29  15  30  16  31  17  32"

// TestFramedApplyMatchesWhole streams a recording through the filter in
// frames and checks the result against a single whole-recording Apply.
func TestFramedApplyMatchesWhole(t *testing.T) {
	const samples, channels = 100, 32
	rng := rand.New(rand.NewSource(7))
	rec := mat.NewDense(samples, channels, nil)
	for i := 0; i < samples; i++ {
		for j := 0; j < channels; j++ {
			rec.Set(i, j, rng.NormFloat64())
		}
	}
	var buf bytes.Buffer
	require.NoError(t, csvio.WriteMatrix(&buf, rec))

	f := laplacian.New()
	_, err := f.Configure(laplacian.Params{
		laplacian.ParamLayout:    montage32,
		laplacian.ParamNChannels: channels,
	})
	require.NoError(t, err)

	whole, err := f.Apply(rec)
	require.NoError(t, err)

	rd := csvio.NewReader(&buf)
	row := 0
	for {
		frame, err := rd.Next(32)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out, err := f.Apply(frame)
		require.NoError(t, err)
		r, _ := out.Dims()
		for i := 0; i < r; i++ {
			assert.InDeltaSlice(t, mat.Row(nil, row+i, whole), mat.Row(nil, i, out), 1e-12)
		}
		row += r
	}
	assert.Equal(t, samples, row)
}
