// Package cursor provides cursor and selection state for the editing
// engine, and the navigation logic that moves them.
//
// A Selection is an anchor position and an active position; when the two
// coincide it represents a bare cursor. The anchor never moves during
// shift-extended navigation, so extending continues from where the
// selection originally started even after it has been flipped past the
// anchor.
//
// Vertical movement is sticky: the State remembers the desired column
// independently of the line the cursor landed on, so moving through a
// short line does not lose the original column. The desired column is
// forgotten on any horizontal move, edit, or explicit position set.
package cursor
