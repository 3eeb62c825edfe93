// Package grid models a rectangular binary occupancy map (free cell / wall)
// as a read-only graph for the mazepath search strategies.
//
// What:
//
//   - Cell is a comparable (Row, Col) pair; it is used directly as a map key.
//   - Grid wraps a rectangular [][]int where 0 is free and anything else is a wall.
//   - IsTraversable answers "in bounds AND free" for any Cell, never panicking.
//   - Neighbors yields the orthogonal neighbors of a Cell in canonical order:
//     right (0,+1), down (+1,0), left (0,-1), up (-1,0).
//   - Component collects the 4-connected free region around a Cell.
//   - Parse reads the text form ('.'/'0' free, '#'/'1' wall, 'S'/'G' markers).
//
// Why:
//
//   - All three strategies share one validity check and one neighbor order,
//     which is what makes their outputs reproducible.
//
// Complexity:
//
//   - New:          O(W×H) time and memory (deep copy).
//   - IsTraversable: O(1).
//   - Component:    O(W×H).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol:      Parse met an unknown symbol.
//   - ErrDuplicateMarker: Parse met a second 'S' or 'G'.
//
// A Grid is never mutated after New returns. Callers that edit layouts build a
// new Grid per search.
package grid
