package dump

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	tagName = "memdbg"
	indent  = "    "
)

// Field renders a labelled dump of one byte field. The label sits on its own
// line at prefix and every dump line follows one level deeper.
func Field(name string, data []byte, prefix string) string {
	return defaultFormatter.Field(name, data, prefix)
}

func (f *Formatter) Field(name string, data []byte, prefix string) string {
	if len(data) == 0 {
		return prefix + name + ": []"
	}

	var b strings.Builder
	b.WriteString(prefix + name + ":")

	rows := f.Rows(data)
	for rows.Next() {
		b.WriteString("\n" + prefix + indent + rows.Text())
	}

	return b.String()
}

// Struct renders the exported fields of a struct, one per line. Fields tagged
// `memdbg:"dump"` are shown as memory dumps, `memdbg:"name"` shows only the
// field's type and `memdbg:"-"` hides the field.
func Struct(v interface{}) string {
	return defaultFormatter.Struct(v)
}

func (f *Formatter) Struct(v interface{}) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", v)
	}

	rt := rv.Type()

	var b strings.Builder
	b.WriteString(rt.Name() + " {")

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := field.Tag.Get(tagName)
		if tag == "-" {
			continue
		}

		value := rv.Field(i)
		b.WriteString("\n")

		switch tag {
		case "name":
			b.WriteString(indent + field.Name + ": " + field.Type.String())
		case "dump":
			if data, ok := byteSequence(value); ok {
				b.WriteString(f.Field(field.Name, data, indent))
				continue
			}
			fallthrough
		default:
			b.WriteString(fmt.Sprintf("%s%s: %v", indent, field.Name, value.Interface()))
		}
	}

	b.WriteString("\n}")

	return b.String()
}
