package cubesim

// grid is a 3x3x3 array addressed by Slot. The piece, edge-flag and
// corner-label layers of a cube state are each a grid, and all three are
// re-indexed by the same rotation primitives so they move in lock step.
type grid[T any] [3][3][3]T

func (g *grid[T]) at(s Slot) T {
	return g[s.I][s.J][s.K]
}

func (g *grid[T]) set(s Slot, v T) {
	g[s.I][s.J][s.K] = v
}

// rotation names one layer turn: the viewing axis the grid is
// re-expressed along, the layer along that axis that turns, and the
// number of signed quarter turns.
type rotation struct {
	perspective int // 0 front-to-back, 1 top-to-bottom, 2 left-to-right
	layer       int // 0 near layer, 2 far layer
	turns       int // +1, -1, +2 or -2
}

// reindex re-expresses the grid along the given perspective axis, so
// that the first index walks that axis instead of front-to-back.
// dir +1 and dir -1 are inverse re-indexings; perspective 0 is the
// identity and never reaches here.
func reindex[T any](g grid[T], perspective, dir int) grid[T] {
	var out grid[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				switch {
				case perspective == 1 && dir > 0:
					out[i][j][k] = g[j][2-i][k]
				case perspective == 1 && dir < 0:
					out[i][j][k] = g[2-j][i][k]
				case perspective == 2 && dir > 0:
					out[i][j][k] = g[k][j][2-i]
				default: // perspective 2, dir < 0
					out[i][j][k] = g[2-k][j][i]
				}
			}
		}
	}
	return out
}

// turnLayer rotates one 2-D layer by 90 degrees times turns, positive
// counter-clockwise as seen from the near side of the perspective axis.
func turnLayer[T any](f [3][3]T, turns int) [3][3]T {
	var out [3][3]T
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			switch turns {
			case 1:
				out[a][b] = f[b][2-a]
			case -1:
				out[a][b] = f[2-b][a]
			default: // half turn, either sign
				out[a][b] = f[2-a][2-b]
			}
		}
	}
	return out
}

// rotate applies one layer turn: change perspective, turn the targeted
// layer, then restore the front-to-back convention.
func rotate[T any](g grid[T], r rotation) grid[T] {
	if r.perspective != 0 {
		g = reindex(g, r.perspective, -1)
	}
	g[r.layer] = turnLayer(g[r.layer], r.turns)
	if r.perspective != 0 {
		g = reindex(g, r.perspective, 1)
	}
	return g
}
