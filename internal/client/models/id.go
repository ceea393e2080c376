package models

import "github.com/google/uuid"

// SameID reports whether a and b name the same record. GUIDs compare by
// value, so case and brace/urn forms do not matter; anything else compares
// as plain text.
func SameID(a, b string) bool {
	if a == b {
		return true
	}
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA != nil || errB != nil {
		return false
	}
	return ua == ub
}

// IsNilID reports whether id carries no identity: empty or the nil GUID in
// any of its spellings.
func IsNilID(id string) bool {
	if id == "" {
		return true
	}
	u, err := uuid.Parse(id)
	return err == nil && u == uuid.Nil
}
