package token

import "fmt"

// Interns is the string intern table for a single decode pass. It is
// append-only: entries are indexed by definition order starting at 0
// and references may only name previously defined entries.
type Interns struct {
	entries []string
}

// Define appends v to the table and returns it.
func (in *Interns) Define(v string) string {
	in.entries = append(in.entries, v)
	return v
}

// Lookup resolves a non-negative reference to its entry.
func (in *Interns) Lookup(ref int16) (string, error) {
	if ref < 0 || int(ref) >= len(in.entries) {
		return "", fmt.Errorf("%w: %d of %d entries", ErrInternReference, ref, len(in.entries))
	}
	return in.entries[ref], nil
}

// Len is the number of defined entries.
func (in *Interns) Len() int {
	return len(in.entries)
}
