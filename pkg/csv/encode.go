package csv

import "strings"

// escapeSet is the set of characters that force a field to be quoted.
const escapeSet = ",\"\r\n"

// EncodeRow encodes one row as a single CSV line terminated with CRLF.
//
// A field is quoted if and only if it contains a comma, a double quote, a
// carriage return, or a line feed; inside a quoted field every quote is
// doubled. All other fields are emitted verbatim. Field content is opaque
// text: multi-byte sequences pass through untouched.
//
// EncodeRow is pure and total. A row with a single empty field encodes to a
// line containing only the terminator.
//
// Example:
//
//	csv.EncodeRow([]string{"a,bc", "12,3"}) // "\"a,bc\",\"12,3\"\r\n"
//	csv.EncodeRow([]string{`a"bc`})         // "\"a\"\"bc\"\r\n"
//	csv.EncodeRow([]string{""})             // "\r\n"
func EncodeRow(row []string) string {
	buf := getBuffer()
	buf = appendRow(buf, row)
	line := string(buf)
	putBuffer(buf)
	return line
}

// appendRow appends the encoded form of row, including the CRLF terminator.
func appendRow(buf []byte, row []string) []byte {
	for i, field := range row {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendField(buf, field)
	}
	return append(buf, '\r', '\n')
}

// appendField appends one encoded field, quoting and escaping when needed.
func appendField(buf []byte, value string) []byte {
	if !strings.ContainsAny(value, escapeSet) {
		return append(buf, value...)
	}
	buf = append(buf, '"')
	for i := 0; i < len(value); i++ {
		if value[i] == '"' {
			buf = append(buf, '"', '"')
			continue
		}
		buf = append(buf, value[i])
	}
	return append(buf, '"')
}
