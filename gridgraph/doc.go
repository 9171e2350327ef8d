// Package gridgraph owns the obstacle layout of a rectangular 2D grid and the
// random mutations applied to it between planning steps.
//
// What:
//
//   - Grid is a fixed rows×cols array of cells, each Free or Obstacle, stored row-major.
//   - Generate scatters floor(rows·cols·ratio) obstacles over distinct cells chosen
//     uniformly without replacement.
//   - Relocate moves obstacles one at a time from an obstacle cell to a free cell.
//   - FreeComponents labels 4-connected regions of free cells.
//
// Why:
//
//   - A mobile agent replans against a grid whose obstacles drift between queries.
//   - Every random choice goes through the injectable Rand, so any layout and any
//     relocation sequence can be reproduced from a seed.
//
// No cell is ever excluded from obstacle placement or relocation. A generated grid may
// therefore block its own start or goal cell; planners see that as an ordinary
// unreachable outcome.
//
// Complexity:
//
//   - Generate:       O(R×C) time and memory.
//   - Relocate(k):    O(R×C + k) time, O(R×C) memory for the candidate sets.
//   - FreeComponents: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid: fewer than one row or one column.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadRatio: obstacle ratio outside [0, 1).
//   - ErrNilRand: no random source supplied.
package gridgraph
