package shapes

import "fmt"

// FaultKind classifies hard failures. Soft failures (clamped parameters,
// infeasible drags) are never reported as errors.
type FaultKind int

const (
	InvalidIdentifier FaultKind = iota + 1
	IndexOutOfRange
	NilArgument
	PropertyNotSet
	UnknownProperty
	UnsupportedVersion
	DuplicateType
	NestedTemplate
)

var faultNames = [...]string{
	InvalidIdentifier:  "invalid identifier",
	IndexOutOfRange:    "index out of range",
	NilArgument:        "nil argument",
	PropertyNotSet:     "property not set",
	UnknownProperty:    "unknown property",
	UnsupportedVersion: "unsupported version",
	DuplicateType:      "duplicate shape type",
	NestedTemplate:     "nested template",
}

func (k FaultKind) String() string {
	if k > 0 && int(k) < len(faultNames) {
		return faultNames[k]
	}
	return fmt.Sprintf("FaultKind(%d)", int(k))
}

// Fault is a hard failure caused by a caller defect or missing configuration.
// Faults of the same kind match each other with errors.Is, so callers can test
// against the Err* sentinels.
type Fault struct {
	Kind FaultKind
	// Op is the operation that failed, e.g. "ThickArrow.MoveControlPoint".
	Op  string
	Msg string
}

func (f *Fault) Error() string {
	s := f.Kind.String()
	if f.Msg != "" {
		s += ": " + f.Msg
	}
	if f.Op != "" {
		s = f.Op + ": " + s
	}
	return s
}

func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	return ok && t.Kind == f.Kind
}

var (
	ErrInvalidIdentifier  = &Fault{Kind: InvalidIdentifier}
	ErrIndexOutOfRange    = &Fault{Kind: IndexOutOfRange}
	ErrNilArgument        = &Fault{Kind: NilArgument}
	ErrPropertyNotSet     = &Fault{Kind: PropertyNotSet}
	ErrUnknownProperty    = &Fault{Kind: UnknownProperty}
	ErrUnsupportedVersion = &Fault{Kind: UnsupportedVersion}
	ErrDuplicateType      = &Fault{Kind: DuplicateType}
	ErrNestedTemplate     = &Fault{Kind: NestedTemplate}
)

func fault(kind FaultKind, op, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
