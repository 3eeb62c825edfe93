// Package scenario loads maze runs from YAML (or JSON) documents.
//
// A scenario names a grid, the two endpoints, an algorithm and a pacing
// delay. The grid is written either as text rows ("maze") using the symbols
// of grid.Parse, or as numeric rows ("cells") of 0 and 1:
//
//	name: corridor
//	algorithm: bfs
//	speed: fast
//	maze:
//	  - "S.."
//	  - "#.#"
//	  - "G.."
//
// Explicit start/goal keys win over S/G markers. "delay" (a Go duration)
// wins over "speed". A few scenarios ship embedded; see Builtins.
package scenario
