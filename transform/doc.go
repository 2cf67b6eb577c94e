// Package transform builds 4×4 homogeneous transform matrices as ordinary
// *matrix.Dense values: identity, scale, translation, axis-angle rotation
// and orthographic projection.
//
// All presets are column-major like every Dense and follow the right-handed
// convention: rotating +X by 90° about +Z yields +Y.
//
// Orthographic maps a Bounds box onto the [-1, 1]³ cube. With invertZ the Z
// axis is flipped, which is what OpenGL-style normalized device coordinates
// expect.
//
//	b := transform.Bounds{
//	  X: transform.Extent{Min: -10, Max: 10},
//	  Y: transform.Extent{Min: -20, Max: 20},
//	  Z: transform.Extent{Min: -30, Max: 30},
//	}
//	p, _ := transform.Orthographic(b, true)
//	v, _ := transform.Apply(p, corner) // (-1, -1, 1) for the min corner
package transform
