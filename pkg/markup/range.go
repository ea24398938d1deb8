package markup

import "fmt"

// Range is a half-open interval [Start, Start+Length).
type Range struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End returns the exclusive end of the range
func (r Range) End() int {
	return r.Start + r.Length
}

// IsEmpty reports whether the range covers nothing
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains reports whether other lies entirely inside r
func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End() <= r.End()
}

// String formats the range as {start, length}
func (r Range) String() string {
	return fmt.Sprintf("{%d, %d}", r.Start, r.Length)
}
