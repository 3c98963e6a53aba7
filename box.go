package marlin

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Extend(b)
	}
	return box
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Center() Vector {
	return a.Min.Add(a.Max).MulScalar(0.5)
}

// Anchor returns a point within the box at fractional coordinates.
func (a Box) Anchor(anchor Vector) Vector {
	return a.Min.Add(a.Size().Mul(anchor))
}

func (a Box) Extend(b Box) Box {
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

// Corners returns the eight corner points.
func (a Box) Corners() []Vector {
	x0, y0, z0 := a.Min.X, a.Min.Y, a.Min.Z
	x1, y1, z1 := a.Max.X, a.Max.Y, a.Max.Z
	return []Vector{
		{x0, y0, z0},
		{x1, y0, z0},
		{x0, y1, z0},
		{x1, y1, z0},
		{x0, y0, z1},
		{x1, y0, z1},
		{x0, y1, z1},
		{x1, y1, z1},
	}
}

func (a Box) Contains(b Vector) bool {
	return a.Min.X <= b.X && a.Max.X >= b.X &&
		a.Min.Y <= b.Y && a.Max.Y >= b.Y &&
		a.Min.Z <= b.Z && a.Max.Z >= b.Z
}
