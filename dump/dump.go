package dump

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	RowWidth   = 32
	GroupWidth = 8

	// MaxRowWidth bounds RowWidth so rendered row sizes stay far from overflow.
	MaxRowWidth = 1 << 16
)

const hexDigits = "0123456789ABCDEF"

type Options struct {
	RowWidth   int
	GroupWidth int

	// Compact drops the blank slots of groups past the end of the buffer
	// instead of padding the last row out to the full row width.
	Compact bool

	// Highlight selects bytes whose cells are passed through Paint.
	Highlight func(b byte) bool
	Paint     func(s string) string
}

type Formatter struct {
	rowWidth   int
	groupWidth int
	compact    bool
	highlight  func(b byte) bool
	paint      func(s string) string
}

var defaultFormatter = &Formatter{
	rowWidth:   RowWidth,
	groupWidth: GroupWidth,
}

func DefaultOptions() Options {
	return Options{
		RowWidth:   RowWidth,
		GroupWidth: GroupWidth,
	}
}

func New(opts Options) (*Formatter, error) {
	if opts.RowWidth <= 0 {
		return nil, errors.Errorf("row width must be positive, got %d", opts.RowWidth)
	}

	if opts.RowWidth > MaxRowWidth {
		return nil, errors.Errorf("row width must be at most %d, got %d", MaxRowWidth, opts.RowWidth)
	}

	if opts.GroupWidth <= 0 {
		return nil, errors.Errorf("group width must be positive, got %d", opts.GroupWidth)
	}

	if opts.RowWidth%opts.GroupWidth != 0 {
		return nil, errors.Errorf("row width %d is not a multiple of group width %d", opts.RowWidth, opts.GroupWidth)
	}

	f := &Formatter{
		rowWidth:   opts.RowWidth,
		groupWidth: opts.GroupWidth,
		compact:    opts.Compact,
	}

	if opts.Highlight != nil && opts.Paint != nil {
		f.highlight = opts.Highlight
		f.paint = opts.Paint
	}

	return f, nil
}

func Default() *Formatter {
	return defaultFormatter
}

// IsPrintable reports whether b is rendered as itself in the ASCII section.
// Space is not printable.
func IsPrintable(b byte) bool {
	return b >= 0x21 && b <= 0x7E
}

func (f *Formatter) RowWidth() int {
	return f.rowWidth
}

func (f *Formatter) GroupWidth() int {
	return f.groupWidth
}

func (f *Formatter) Rows(data []byte) *Rows {
	return &Rows{f: f, data: data}
}

func (f *Formatter) Lines(data []byte) []string {
	lines := make([]string, 0, (len(data)+f.rowWidth-1)/f.rowWidth)

	rows := f.Rows(data)
	for rows.Next() {
		lines = append(lines, rows.Text())
	}

	return lines
}

func (f *Formatter) Format(data []byte) string {
	return strings.Join(f.Lines(data), "\n")
}

// WriteTo writes every line of the dump followed by a newline.
func (f *Formatter) WriteTo(w io.Writer, data []byte) (int64, error) {
	var total int64

	rows := f.Rows(data)
	for rows.Next() {
		n, err := io.WriteString(w, rows.Text()+"\n")
		total += int64(n)

		if err != nil {
			return total, errors.Wrap(err, "error writing dump")
		}
	}

	return total, nil
}

func Lines(data []byte) []string {
	return defaultFormatter.Lines(data)
}

func Format(data []byte) string {
	return defaultFormatter.Format(data)
}

func (f *Formatter) renderRow(row []byte) string {
	var b strings.Builder

	groups := f.rowWidth / f.groupWidth
	b.Grow(groups*(f.groupWidth*3+2) + 2 + len(row)*2)

	for g := 0; g < groups; g++ {
		lo := g * f.groupWidth

		if lo >= len(row) {
			if f.compact {
				break
			}

			// Blank slot as wide as a full group with its divider.
			b.WriteString(strings.Repeat(" ", f.groupWidth*3+2))
			continue
		}

		hi := lo + f.groupWidth
		if hi > len(row) {
			hi = len(row)
		}

		b.WriteString("| ")

		for i, c := range row[lo:hi] {
			if i > 0 {
				b.WriteByte(' ')
			}

			f.writeCell(&b, c, string([]byte{hexDigits[c>>4], hexDigits[c&0x0F]}))
		}

		b.WriteString(strings.Repeat(" ", (f.groupWidth-(hi-lo))*3))
		b.WriteByte(' ')
	}

	b.WriteString("| ")

	for i, c := range row {
		if i > 0 {
			b.WriteByte(' ')
		}

		char := "."
		if IsPrintable(c) {
			char = string(rune(c))
		}

		f.writeCell(&b, c, char)
	}

	return b.String()
}

func (f *Formatter) writeCell(b *strings.Builder, c byte, cell string) {
	if f.highlight != nil && f.highlight(c) {
		cell = f.paint(cell)
	}

	b.WriteString(cell)
}
