// Package robinson models the Robinson triangles that Penrose tilings are
// built from and the substitution rule that splits one triangle into two
// smaller ones.
//
// A triangle is stored as its apex, the common length of the two legs that
// meet there, and the direction of the altitude from the apex to the middle of
// the base. The base corners are derived on demand. Coordinates follow screen
// convention: X grows to the right and Y grows downward, while angles are
// measured counter-clockwise from the positive X axis.
//
// Thin triangles are golden triangles (36° apex, legs φ times the base) and
// thick triangles are golden gnomons (108° apex, base φ times the legs). The
// Left and Right variants are mirror images; they split on opposite sides so
// that the handedness of every piece is preserved from one generation to the
// next.
package robinson
