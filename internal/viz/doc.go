// Package viz draws scales in the terminal.
//
//   - [Canvas]: braille dot grid, 2x4 dots per character
//   - [Strip] and [Dial]: linear and circular scales drawn on a canvas
//   - [Styles]: lipgloss styles built from a [Theme], used for tick tables,
//     readouts and framed drawings
package viz
