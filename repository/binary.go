// Package repository persists shapes and loads style and template libraries.
package repository

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"honnef.co/go/shapes"
)

// maxStringLen bounds the strings BinaryReader accepts, so that corrupt input
// cannot request arbitrary allocations.
const maxStringLen = 1 << 20

// BinaryWriter writes shape fields as little-endian values. Strings are
// prefixed with their length in bytes.
type BinaryWriter struct {
	w   io.Writer
	buf [4]byte
}

var _ shapes.Writer = (*BinaryWriter)(nil)

func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w}
}

func (bw *BinaryWriter) WriteInt32(v int32) error {
	binary.LittleEndian.PutUint32(bw.buf[:], uint32(v))
	_, err := bw.w.Write(bw.buf[:4])
	return err
}

func (bw *BinaryWriter) WriteBool(v bool) error {
	bw.buf[0] = 0
	if v {
		bw.buf[0] = 1
	}
	_, err := bw.w.Write(bw.buf[:1])
	return err
}

func (bw *BinaryWriter) WriteFloat(v float32) error {
	return bw.WriteInt32(int32(math.Float32bits(v)))
}

func (bw *BinaryWriter) WriteString(v string) error {
	if len(v) > maxStringLen {
		return fmt.Errorf("repository: string of %d bytes is too long", len(v))
	}
	if err := bw.WriteInt32(int32(len(v))); err != nil {
		return err
	}
	_, err := io.WriteString(bw.w, v)
	return err
}

// BinaryReader reads what BinaryWriter wrote. A truncated stream yields
// io.ErrUnexpectedEOF.
type BinaryReader struct {
	r   io.Reader
	buf [4]byte
}

var _ shapes.Reader = (*BinaryReader)(nil)

func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{r: r}
}

func (br *BinaryReader) read(n int) ([]byte, error) {
	if _, err := io.ReadFull(br.r, br.buf[:n]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return br.buf[:n], nil
}

func (br *BinaryReader) ReadInt32() (int32, error) {
	b, err := br.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (br *BinaryReader) ReadBool() (bool, error) {
	b, err := br.read(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("repository: invalid bool byte %#x", b[0])
	}
}

func (br *BinaryReader) ReadFloat() (float32, error) {
	v, err := br.ReadInt32()
	return math.Float32frombits(uint32(v)), err
}

func (br *BinaryReader) ReadString() (string, error) {
	n, err := br.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 || n > maxStringLen {
		return "", fmt.Errorf("repository: invalid string length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br.r, b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return string(b), nil
}
