package failable

// Succeeder is the always-safe query shared by both variants.
type Succeeder interface {
	// IsSuccess returns true if the success payload is the active one
	IsSuccess() bool
}

// Provider defines an interface for types that expose a success payload
type Provider[S any] interface {
	Succeeder
	// Success returns the success payload
	Success() S
}

// Failer defines an interface for types that expose a failure payload
type Failer[F any] interface {
	Succeeder
	// Failure returns the failure payload
	Failure() F
}

var (
	_ Succeeder      = Result[int, string]{}
	_ Provider[int]  = Result[int, string]{}
	_ Failer[string] = Result[int, string]{}
)
