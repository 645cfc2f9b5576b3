package dump

// Rows walks the rendered lines of one buffer, one row per call to Next.
// It does not copy the buffer; the caller must not modify it while iterating.
type Rows struct {
	f      *Formatter
	data   []byte
	cursor int
	line   string
}

func (r *Rows) Next() bool {
	if r.cursor >= len(r.data) {
		r.line = ""
		return false
	}

	end := len(r.data)
	if end-r.cursor > r.f.rowWidth {
		end = r.cursor + r.f.rowWidth
	}

	r.line = r.f.renderRow(r.data[r.cursor:end])
	r.cursor = end

	return true
}

// Text returns the line produced by the last call to Next.
func (r *Rows) Text() string {
	return r.line
}

// Offset is the buffer position of the next row.
func (r *Rows) Offset() int {
	return r.cursor
}

func (r *Rows) Reset() {
	r.cursor = 0
	r.line = ""
}
