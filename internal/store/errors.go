package store

import "github.com/halvard/paperchase/ent"

// IsDuplicate reports whether err came from a unique-constraint
// violation — the signal that a racing identical insert lost.
func IsDuplicate(err error) bool {
	return ent.IsConstraintError(err)
}
