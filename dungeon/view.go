package dungeon

// Side is the wall surface a Face shows.
type Side int

const (
	// Front faces the viewer across the cell ahead.
	Front Side = iota
	// Left and Right run along the corridor beside a cell.
	Left
	Right
	// LeftFront and RightFront face the viewer from beside the cell
	// ahead, seen through a side opening.
	LeftFront
	RightFront
)

// Face is a wall surface visible from a viewpoint, Depth cells ahead.
type Face struct {
	Depth int
	Side  Side
}

// View lists the wall faces visible looking along f from c, at most depth
// cells deep, ordered far to near for painting.
func (m *Map) View(c Cell, f Facing, depth int) []Face {
	var faces []Face
	left, right := f.Turn(-1), f.Turn(1)

	for d := 0; d < depth; d++ {
		if m.Wall(c.Step(f)) {
			faces = append(faces, Face{Depth: d, Side: Front})
		}
		faces = append(faces, m.side(c, d, left, f, Left, LeftFront)...)
		faces = append(faces, m.side(c, d, right, f, Right, RightFront)...)
		if m.Wall(c.Step(f)) {
			break
		}
		c = c.Step(f)
	}

	for i, j := 0, len(faces)-1; i < j; i, j = i+1, j-1 {
		faces[i], faces[j] = faces[j], faces[i]
	}
	return faces
}

func (m *Map) side(c Cell, d int, toward, ahead Facing, wall, beyond Side) []Face {
	beside := c.Step(toward)
	if m.Wall(beside) {
		return []Face{{Depth: d, Side: wall}}
	}
	if m.Wall(beside.Step(ahead)) {
		return []Face{{Depth: d, Side: beyond}}
	}
	return nil
}
