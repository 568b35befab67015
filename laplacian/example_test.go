package laplacian_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/laplacian/laplacian"
	"gonum.org/v1/gonum/mat"
)

// ExampleFilter_Configure shows the fallback outcome when the host omits
// the channel count, then filters one frame.
func ExampleFilter_Configure() {
	f := laplacian.New()

	_, err := f.Apply(mat.NewDense(1, 4, nil))
	fmt.Println("before configure:", errors.Is(err, laplacian.ErrMaskNotReady))

	outcome, err := f.Configure(laplacian.Params{
		laplacian.ParamLayout: "1 2; 3 4",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("outcome:", outcome, "channels:", f.NChannels())

	out, _ := f.Apply(mat.NewDense(1, 4, []float64{4, 2, 2, 0}))
	fmt.Println(mat.Row(nil, 0, out))

	// Output:
	// before configure: true
	// outcome: channel-count-fallback channels: 4
	// [2 0 0 -2]
}
