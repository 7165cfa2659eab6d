package student

import (
	"strconv"
	"strings"
)

// String renders d in the single-line inspect form, e.g.
//
//	{ name: 'Kunal Sahu', age: 25, city: 'Bhopal', isMarried: false, skills: [ 'JavaScript' ] }
func (d Data) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, field := range d.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.Key)
		b.WriteString(": ")
		writeInspectValue(&b, field.Value)
	}
	b.WriteString(" }")
	return b.String()
}

// FormatValue renders a single field value the way String does.
func FormatValue(value any) string {
	var b strings.Builder
	writeInspectValue(&b, value)
	return b.String()
}

func writeInspectValue(b *strings.Builder, value any) {
	switch v := value.(type) {
	case string:
		b.WriteString(quoteSingle(v))
	case int:
		b.WriteString(strconv.Itoa(v))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case []string:
		if len(v) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[ ")
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteSingle(item))
		}
		b.WriteString(" ]")
	}
}

func quoteSingle(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
