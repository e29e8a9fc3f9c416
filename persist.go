package shapes

import "math"

// FormatVersion is the newest field layout SaveFields writes and LoadFields
// understands.
const FormatVersion = 1

// Writer is the typed primitive sink shapes save their fields to.
type Writer interface {
	WriteInt32(v int32) error
	WriteBool(v bool) error
	WriteFloat(v float32) error
	WriteString(v string) error
}

// Reader is the typed primitive source shapes load their fields from.
type Reader interface {
	ReadInt32() (int32, error)
	ReadBool() (bool, error)
	ReadFloat() (float32, error)
	ReadString() (string, error)
}

func checkVersion(op string, version int) error {
	if version < 1 || version > FormatVersion {
		return fault(UnsupportedVersion, op, "version %d", version)
	}
	return nil
}

// fieldWriter keeps the first error so that a shape can write all of its
// fields and check once.
type fieldWriter struct {
	w   Writer
	op  string
	err error
}

// int writes v as a 32-bit field. Values that do not fit fail the write
// instead of being truncated.
func (fw *fieldWriter) int(v int) {
	if fw.err != nil {
		return
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		fw.err = fault(IndexOutOfRange, fw.op, "%d does not fit in 32 bits", v)
		return
	}
	fw.err = fw.w.WriteInt32(int32(v))
}

func (fw *fieldWriter) bool(v bool) {
	if fw.err == nil {
		fw.err = fw.w.WriteBool(v)
	}
}

func (fw *fieldWriter) float(v float64) {
	if fw.err == nil {
		fw.err = fw.w.WriteFloat(float32(v))
	}
}

func (fw *fieldWriter) string(v string) {
	if fw.err == nil {
		fw.err = fw.w.WriteString(v)
	}
}

type fieldReader struct {
	r   Reader
	err error
}

func (fr *fieldReader) int() int {
	if fr.err != nil {
		return 0
	}
	v, err := fr.r.ReadInt32()
	fr.err = err
	return int(v)
}

func (fr *fieldReader) bool() bool {
	if fr.err != nil {
		return false
	}
	v, err := fr.r.ReadBool()
	fr.err = err
	return v
}

func (fr *fieldReader) float() float64 {
	if fr.err != nil {
		return 0
	}
	v, err := fr.r.ReadFloat()
	fr.err = err
	return float64(v)
}

func (fr *fieldReader) string() string {
	if fr.err != nil {
		return ""
	}
	v, err := fr.r.ReadString()
	fr.err = err
	return v
}

// Styles are saved by name; the empty name means inherited.

func styleName[T interface{ comparable }](o Override[T], name func(T) string) string {
	if v, ok := o.Get(); ok {
		return name(v)
	}
	return ""
}

func loadStyle[T comparable](op, kind, name string, lookup func(string) (T, bool)) (Override[T], error) {
	if name == "" {
		return Inherited[T](), nil
	}
	if lookup == nil {
		return Inherited[T](), fault(NilArgument, op, "no style resolver for %s style %q", kind, name)
	}
	v, ok := lookup(name)
	if !ok {
		return Inherited[T](), fault(InvalidIdentifier, op, "unknown %s style %q", kind, name)
	}
	return Explicit(v), nil
}
