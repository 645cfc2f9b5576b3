package dump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Buf is a byte slice that prints as a memory dump.
type Buf []byte

func (b Buf) String() string {
	return Format(b)
}

func (b Buf) Lines() []string {
	return Lines(b)
}

// Format prints the dump for %v and %s and the raw bytes for %x, %X and %q.
func (b Buf) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x', 'X', 'q':
		fmt.Fprintf(s, formatDirective(s, verb), []byte(b))
	default:
		_, _ = io.WriteString(s, Format(b))
	}
}

func formatDirective(s fmt.State, verb rune) string {
	directive := "%"
	for _, flag := range "+-# 0" {
		if s.Flag(int(flag)) {
			directive += string(flag)
		}
	}

	if width, ok := s.Width(); ok {
		directive += strconv.Itoa(width)
	}

	if precision, ok := s.Precision(); ok {
		directive += "." + strconv.Itoa(precision)
	}

	return directive + string(verb)
}

// Value returns the bytes behind v. Byte slices, byte arrays and strings are
// used as they are, fixed size values are laid out as little endian memory
// and anything else falls back to its %v text.
func Value(v interface{}) Buf {
	switch t := v.(type) {
	case nil:
		return nil
	case Buf:
		return t
	case []byte:
		return t
	case string:
		return Buf(t)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	if data, ok := byteSequence(rv); ok {
		return data
	}

	if rv.Kind() == reflect.String {
		return Buf(rv.String())
	}

	if binary.Size(rv.Interface()) >= 0 {
		var out bytes.Buffer
		if err := binary.Write(&out, binary.LittleEndian, rv.Interface()); err == nil {
			return out.Bytes()
		}
	}

	return Buf(fmt.Sprintf("%v", rv.Interface()))
}

func byteSequence(rv reflect.Value) ([]byte, bool) {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, false
		}
		return rv.Bytes(), true
	case reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, false
		}
		data := make([]byte, rv.Len())
		for i := range data {
			data[i] = byte(rv.Index(i).Uint())
		}
		return data, true
	}

	return nil, false
}
