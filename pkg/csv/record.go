package csv

// Record is one row with optional header-aware field access. It is a view:
// the fields slice is not copied.
type Record struct {
	fields  []string
	headers []string // reference to the stream's headers for name lookup
}

// Fields returns the raw field values.
func (r Record) Fields() []string {
	return r.fields
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// Get returns the field at index i. The second return value is false when
// the index is out of range, which is routine in sparse tables.
func (r Record) Get(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// GetByName returns the field under the named column. The second return
// value is false when the name is unknown or the record is too sparse to
// reach that column.
func (r Record) GetByName(name string) (string, bool) {
	for i, h := range r.headers {
		if h == name {
			return r.Get(i)
		}
	}
	return "", false
}
