package marlin

// The six planes of the clip volume, as homogeneous half-spaces. A point p
// is inside a plane when p.Dot(plane) >= 0.
var clipPlanes = []VectorW{
	{-1, 0, 0, 1}, // x <= w
	{1, 0, 0, 1},  // x >= -w
	{0, -1, 0, 1}, // y <= w
	{0, 1, 0, 1},  // y >= -w
	{0, 0, -1, 1}, // z <= w
	{0, 0, 1, 1},  // z >= -w
}

func lerpVertex(a, b Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = a.Position.Lerp(b.Position, t)
	v.Normal = a.Normal.Lerp(b.Normal, t)
	v.Texture = a.Texture.Lerp(b.Texture, t)
	v.Color = a.Color.Lerp(b.Color, t)
	v.Output = a.Output.Add(b.Output.Sub(a.Output).MulScalar(t))
	return v
}

// sutherlandHodgman clips a polygon of post-vertex-stage vertices against
// the clip volume, interpolating every attribute at the cut points.
func sutherlandHodgman(points []Vertex) []Vertex {
	output := points
	for _, plane := range clipPlanes {
		input := output
		output = nil
		if len(input) == 0 {
			return nil
		}
		s := input[len(input)-1]
		for _, e := range input {
			ds := s.Output.Dot(plane)
			de := e.Output.Dot(plane)
			if de >= 0 {
				if ds < 0 {
					output = append(output, lerpVertex(s, e, ds/(ds-de)))
				}
				output = append(output, e)
			} else if ds >= 0 {
				output = append(output, lerpVertex(s, e, ds/(ds-de)))
			}
			s = e
		}
	}
	return output
}

// ClipTriangle clips a triangle against the clip volume, fanning the
// resulting polygon back into triangles. Returns nil when fully outside.
func ClipTriangle(t *Triangle) []*Triangle {
	points := sutherlandHodgman([]Vertex{t.V1, t.V2, t.V3})
	var result []*Triangle
	for i := 2; i < len(points); i++ {
		result = append(result, &Triangle{points[0], points[i-1], points[i]})
	}
	return result
}

// ClipLine clips a line segment against the clip volume. Returns nil when
// fully outside.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := v1.Output.Dot(plane)
		d2 := v2.Output.Dot(plane)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = lerpVertex(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = lerpVertex(v2, v1, d2/(d2-d1))
		}
	}
	return &Line{v1, v2}
}
