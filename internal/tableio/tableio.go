// Package tableio loads the precomputed lookup tables the cube engine
// consults: per-move slot movement and orientation-blind slot distances
// for edges and corners. The tables are built by an offline
// precomputation step and shipped as JSON, with a copy embedded in the
// binary so the engine works with no files on disk.
package tableio

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
)

//go:embed data/*.json
var embedded embed.FS

// File names inside a table directory.
const (
	edgeDistanceFile   = "edge_distance_table.json"
	cornerDistanceFile = "corner_distance_table.json"
	movementFile       = "movement_table.json"
)

// Default returns the tables embedded in the binary. The embedded data
// is validated on every call; failure means a broken build, not a user
// error.
func Default() (*cubesim.Tables, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("tableio: embedded data: %w", err)
	}
	return loadFS(sub)
}

// Load reads the three table files from dir. A missing or malformed
// file wraps cubesim.ErrMissingLookupTable.
func Load(dir string) (*cubesim.Tables, error) {
	return loadFS(os.DirFS(dir))
}

func loadFS(fsys fs.FS) (*cubesim.Tables, error) {
	tables := &cubesim.Tables{}

	var err error
	if tables.EdgeDistance, err = readDistances(fsys, edgeDistanceFile); err != nil {
		return nil, err
	}
	if tables.CornerDistance, err = readDistances(fsys, cornerDistanceFile); err != nil {
		return nil, err
	}
	if tables.Movement, err = readMovement(fsys, movementFile); err != nil {
		return nil, err
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func readDistances(fsys fs.FS, name string) (map[cubesim.SlotPair]int, error) {
	raw := make(map[string]int)
	if err := readJSON(fsys, name, &raw); err != nil {
		return nil, err
	}
	out := make(map[cubesim.SlotPair]int, len(raw))
	for key, d := range raw {
		home, pos, ok := strings.Cut(key, "|")
		if !ok {
			return nil, fmt.Errorf("tableio: %s: key %q: want \"home|pos\": %w",
				name, key, cubesim.ErrMissingLookupTable)
		}
		hs, err := parseSlot(home)
		if err != nil {
			return nil, fmt.Errorf("tableio: %s: key %q: %w", name, key, err)
		}
		ps, err := parseSlot(pos)
		if err != nil {
			return nil, fmt.Errorf("tableio: %s: key %q: %w", name, key, err)
		}
		out[cubesim.SlotPair{Home: hs, Pos: ps}] = d
	}
	return out, nil
}

func readMovement(fsys fs.FS, name string) (map[cubesim.Move]map[cubesim.Slot]cubesim.Slot, error) {
	raw := make(map[string]map[string]string)
	if err := readJSON(fsys, name, &raw); err != nil {
		return nil, err
	}
	out := make(map[cubesim.Move]map[cubesim.Slot]cubesim.Slot, len(raw))
	for token, entries := range raw {
		move, err := cubesim.ParseMove(token)
		if err != nil {
			return nil, fmt.Errorf("tableio: %s: move %q: %w", name, token, err)
		}
		mv := make(map[cubesim.Slot]cubesim.Slot, len(entries))
		for from, to := range entries {
			src, err := parseSlot(from)
			if err != nil {
				return nil, fmt.Errorf("tableio: %s: move %q: %w", name, token, err)
			}
			dst, err := parseSlot(to)
			if err != nil {
				return nil, fmt.Errorf("tableio: %s: move %q: %w", name, token, err)
			}
			mv[src] = dst
		}
		out[move] = mv
	}
	return out, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("tableio: read %s: %v: %w", name, err, cubesim.ErrMissingLookupTable)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("tableio: decode %s: %v: %w", name, err, cubesim.ErrMissingLookupTable)
	}
	return nil
}

// parseSlot parses the wire form "i,j,k".
func parseSlot(s string) (cubesim.Slot, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return cubesim.Slot{}, fmt.Errorf("tableio: slot %q: want \"i,j,k\": %w",
			s, cubesim.ErrMissingLookupTable)
	}
	var coords [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 2 {
			return cubesim.Slot{}, fmt.Errorf("tableio: slot %q: coordinate %q out of range: %w",
				s, p, cubesim.ErrMissingLookupTable)
		}
		coords[i] = n
	}
	return cubesim.Slot{I: coords[0], J: coords[1], K: coords[2]}, nil
}
