package cubesim

import "fmt"

// Axis names one of the three cube-frame axes.
type Axis uint8

const (
	AxisX Axis = iota // left-right, positive toward the right face
	AxisY             // front-back, positive toward the back face
	AxisZ             // down-up, positive toward the up face
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Facing is a cube-frame direction a facelet points at. The boundary
// encoding is one letter per facing: upper case for the positive
// direction of the axis, lower case for the negative one.
type Facing struct {
	Axis Axis
	Neg  bool
}

func (f Facing) String() string {
	c := byte('X') + byte(f.Axis)
	if f.Neg {
		c += 'x' - 'X'
	}
	return string(c)
}

// inverted returns the facing on the same axis pointing the other way.
func (f Facing) inverted() Facing {
	f.Neg = !f.Neg
	return f
}

func parseFacing(c byte) (Facing, error) {
	var f Facing
	switch {
	case c >= 'X' && c <= 'Z':
		f.Axis = Axis(c - 'X')
	case c >= 'x' && c <= 'z':
		f.Axis = Axis(c - 'x')
		f.Neg = true
	default:
		return Facing{}, fmt.Errorf("cubesim: invalid facing letter %q", c)
	}
	return f, nil
}

// CornerOrientation records where a corner piece's three facelets point.
// The facelets are listed in a fixed piece-local order, so two labels
// are equal exactly when the piece sits in the same spatial attitude.
type CornerOrientation [3]Facing

func (o CornerOrientation) String() string {
	return o[0].String() + o[1].String() + o[2].String()
}

// ParseCornerOrientation parses a three-letter axis string such as "xYz".
func ParseCornerOrientation(s string) (CornerOrientation, error) {
	var o CornerOrientation
	if len(s) != 3 {
		return o, fmt.Errorf("cubesim: corner orientation %q: want 3 letters", s)
	}
	for i := 0; i < 3; i++ {
		f, err := parseFacing(s[i])
		if err != nil {
			return o, fmt.Errorf("cubesim: corner orientation %q: %w", s, err)
		}
		o[i] = f
	}
	return o, nil
}

// indexOf returns which facelet of the label points along the given
// axis. Every well-formed corner label names each axis exactly once.
func (o CornerOrientation) indexOf(a Axis) int {
	for i, f := range o {
		if f.Axis == a {
			return i
		}
	}
	return -1
}

// EdgeOrientation is the two-valued flag tracked per edge slot.
type EdgeOrientation uint8

const (
	EdgeGood EdgeOrientation = iota
	EdgeBad
)

func (e EdgeOrientation) String() string {
	if e == EdgeBad {
		return "b"
	}
	return "g"
}

func (e EdgeOrientation) flipped() EdgeOrientation {
	return e ^ EdgeBad
}
