package transform_test

import (
	"fmt"

	"github.com/katalvlaran/math3d/transform"
	"github.com/katalvlaran/math3d/vector"
)

// ExampleOrthographic projects the min corner of a box into NDC space.
func ExampleOrthographic() {
	b := transform.Bounds{
		X: transform.Extent{Min: -10, Max: 10},
		Y: transform.Extent{Min: -20, Max: 20},
		Z: transform.Extent{Min: -30, Max: 30},
	}
	p, err := transform.Orthographic(b, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := transform.Apply(p, b.Min())
	fmt.Println(v)

	// Output:
	// [-1, -1, 1]
}

// ExampleRotationZ turns +X into +Y.
func ExampleRotationZ() {
	v, _ := transform.Apply(transform.RotationZ(90), vector.XAxis())
	fmt.Println(v)

	// Output:
	// [0, 1, 0]
}
