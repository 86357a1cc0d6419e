package waveguide

// Polygon is a closed outline. The closing edge from the last point back to
// the first is implicit.
type Polygon []Point

// Area returns the signed area of the polygon. It is positive for
// anti-clockwise polygons.
func (p Polygon) Area() float64 {
	var area float64
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		area += Vec2(pt).Cross(Vec2(next))
	}
	return area / 2
}

func (p Polygon) BoundingBox() Rect {
	bbox := emptyRect
	for _, pt := range p {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}
