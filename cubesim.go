// Package cubesim tracks the state of a 3x3x3 Rubik's cube through move
// sequences in standard face-turn notation.
//
// The cube is modelled as a 3x3x3 grid of slots. Each slot holds the
// identity of the piece occupying it plus an orientation label: a
// two-valued good/bad flag for edges and a three-facelet axis string for
// corners. Applying a move resolves the orientation labels of the turned
// layer against precomputed lookup tables, then permutes all three
// layers of state in lock step.
//
// The lookup tables (slot-to-slot movement per move, and orientation-blind
// slot distances for edges and corners) are produced by an offline
// precomputation step and loaded through the internal/tableio package.
package cubesim
