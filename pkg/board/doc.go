// Package board models the 5×5 measurement board.
//
// The board spans [-12.5, 12.5] on both axes with the origin at its center.
// It is divided into 25 cells of 5×5 units. Cells are addressed two ways:
//
//   - By index: [Cell]{Row, Col}, with row 0 at the top and col 0 at the left.
//   - By label: column letter A–E (left to right) and row number 1–5
//     (bottom to top), matching the markings on the physical board.
//
// Index row r therefore carries label number 5-r: the top-left cell is
// {Row: 0, Col: 0} = "A5" and the bottom-right cell is {Row: 4, Col: 4} = "E1".
//
// # Presets
//
// A [Catalog] is a named menu of block arrangements. [Builtin] returns the
// fixed menu shipped with the tool; callers may extend a copy with
// [Catalog.With] (the config file does this) without affecting other callers.
//
//	blocks, err := board.Builtin().Blocks("standard") // C2, C3, D2
package board
