package ring_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-matmul/ring"
)

// ExampleNewModular computes a dot product in Z/7Z.
func ExampleNewModular() {
	r, err := ring.NewModular(7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ring.Dot[uint64](r, []uint64{3, 5}, []uint64{4, 6}))
	// Output:
	// 0
}
