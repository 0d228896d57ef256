package failable

import "fmt"

// Misuse reports a wrong-variant payload access: the success accessor called
// on a failure, or the failure accessor called on a success. It marks a
// programming defect, travels by panic, and is never represented as a
// Failure result.
type Misuse struct {
	// Accessor is the method that was called
	Accessor string
	// OnSuccess is the tag of the value it was called on
	OnSuccess bool
}

func (m *Misuse) Error() string {
	tag := "failure"
	if m.OnSuccess {
		tag = "success"
	}
	return fmt.Sprintf("failable: precondition violated: %s called on a %s value", m.Accessor, tag)
}

// AsMisuse interprets a recovered panic value as a Misuse.
func AsMisuse(recovered any) (*Misuse, bool) {
	m, ok := recovered.(*Misuse)
	return m, ok
}

// IsMisuse reports whether a recovered panic value is a Misuse.
func IsMisuse(recovered any) bool {
	_, ok := AsMisuse(recovered)
	return ok
}
