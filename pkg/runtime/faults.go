package runtime

import (
	"errors"
	"fmt"
)

// FaultKind classifies the terminal evaluation errors the core can
// raise. Most are defensive: a type-checked program never triggers
// them, but the evaluator refuses to proceed on a violated assumption.
type FaultKind int

const (
	FaultUnboundName FaultKind = iota
	FaultNoSuchField
	FaultMissingField
	FaultUnknownField
	FaultArityMismatch
	FaultTypeMismatch
	FaultDivisionByZero
	FaultStackOverflow
)

func (k FaultKind) String() string {
	switch k {
	case FaultUnboundName:
		return "UnboundName"
	case FaultNoSuchField:
		return "NoSuchField"
	case FaultMissingField:
		return "MissingField"
	case FaultUnknownField:
		return "UnknownField"
	case FaultArityMismatch:
		return "ArityMismatch"
	case FaultTypeMismatch:
		return "TypeMismatch"
	case FaultDivisionByZero:
		return "DivisionByZero"
	case FaultStackOverflow:
		return "StackOverflow"
	default:
		return fmt.Sprintf("unknown_fault_%d", int(k))
	}
}

// Fault is a terminal evaluation error. It aborts the current run
// immediately; nothing inside the evaluator or dispatcher recovers it.
type Fault struct {
	FaultKind FaultKind
	Message   string
}

func (f *Fault) Error() string { return f.Message }

func NewFault(kind FaultKind, format string, args ...any) *Fault {
	return &Fault{FaultKind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsFault unwraps err into a *Fault when one is in the chain.
func AsFault(err error) (*Fault, bool) {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault, true
	}
	return nil, false
}

// IsFault reports whether err carries a fault of the given kind.
func IsFault(err error, kind FaultKind) bool {
	fault, ok := AsFault(err)
	return ok && fault.FaultKind == kind
}

// FaultKindFromName maps the wire/fixture spelling back to a kind.
func FaultKindFromName(name string) (FaultKind, bool) {
	for _, kind := range []FaultKind{
		FaultUnboundName,
		FaultNoSuchField,
		FaultMissingField,
		FaultUnknownField,
		FaultArityMismatch,
		FaultTypeMismatch,
		FaultDivisionByZero,
		FaultStackOverflow,
	} {
		if kind.String() == name {
			return kind, true
		}
	}
	return 0, false
}
