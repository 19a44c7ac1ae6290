package meshgen

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// normalTolerance bounds how far a stored normal may be from unit length and from
// the geometric triangle normal.
const normalTolerance = 1e-5

// Validate checks that every index is in range, that the three vertices of each
// triangle share one unit normal, and that each triangle is wound counter-clockwise
// around that normal. All violations are reported together.
func (m Mesh) Validate() error {
	var errs []error
	if len(m.Indices)%3 != 0 {
		errs = append(errs, fmt.Errorf("meshgen: index count %d is not a multiple of 3", len(m.Indices)))
	}
	for i, v := range m.Vertices {
		if l := v.Normal.Length(); math32.Abs(l-1) > normalTolerance {
			errs = append(errs, fmt.Errorf("meshgen: vertex %d normal has length %g", i, l))
		}
	}
	for t, tri := range m.Triangles() {
		if !m.inRange(tri) {
			errs = append(errs, fmt.Errorf("meshgen: triangle %d references %v, have %d vertices", t, tri, len(m.Vertices)))
			continue
		}
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		if a.Normal != b.Normal || a.Normal != c.Normal {
			errs = append(errs, fmt.Errorf("meshgen: triangle %d mixes normals %v %v %v", t, a.Normal, b.Normal, c.Normal))
			continue
		}
		cross := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if cross.LengthSquared() == 0 {
			errs = append(errs, fmt.Errorf("meshgen: triangle %d is degenerate", t))
			continue
		}
		geo := cross.MulScalar(1 / cross.Length())
		if geo.Dot(a.Normal) < 1-normalTolerance {
			errs = append(errs, fmt.Errorf("meshgen: triangle %d winds to %v, stored normal %v", t, geo, a.Normal))
		}
	}
	return errors.Join(errs...)
}

func (m Mesh) inRange(tri [3]uint32) bool {
	n := uint32(len(m.Vertices))
	return tri[0] < n && tri[1] < n && tri[2] < n
}

type edgeKey struct {
	from, to math32.Vector3
}

// CheckClosed reports whether the mesh is a closed 2-manifold: every edge, matched
// by vertex position, is used by exactly two triangles, once in each direction.
// Vertices duplicated per face are treated as the same point.
func (m Mesh) CheckClosed() error {
	directed := make(map[edgeKey]int)
	for t, tri := range m.Triangles() {
		if !m.inRange(tri) {
			return fmt.Errorf("meshgen: triangle %d references %v, have %d vertices", t, tri, len(m.Vertices))
		}
		for k := 0; k < 3; k++ {
			from := m.Vertices[tri[k]].Position
			to := m.Vertices[tri[(k+1)%3]].Position
			directed[edgeKey{from, to}]++
		}
	}
	var errs []error
	for e, n := range directed {
		if n != 1 {
			errs = append(errs, fmt.Errorf("meshgen: edge %v -> %v used %d times in the same direction", e.from, e.to, n))
		}
		if directed[edgeKey{e.to, e.from}] != 1 {
			errs = append(errs, fmt.Errorf("meshgen: edge %v -> %v has no opposite half-edge", e.from, e.to))
		}
	}
	return errors.Join(errs...)
}
