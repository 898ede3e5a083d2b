// Package grid implements the pure table state for lattice.
//
// Coordinates are 0-based (Row, Col). The grid keeps explicit row and
// column counters that every mutation must keep consistent with the cell
// storage: each row holds exactly Cols() cells and Rows() equals the live
// row count. The selected cell is stored as an index pair that is
// re-resolved against the current shape on every read, so deleting the
// selected row or column never leaves a dangling reference.
package grid
