package student

import "io"

// Field keys as they appear in the canonical text form.
const (
	KeyName      = "name"
	KeyAge       = "age"
	KeyCity      = "city"
	KeyIsMarried = "isMarried"
	KeySkills    = "skills"
	KeyGreet     = "greet"
)

var dataKeys = []string{KeyName, KeyAge, KeyCity, KeyIsMarried, KeySkills}

// Field pairs a key with its current value.
type Field struct {
	Key   string
	Value any
}

// Keys lists the data field keys in declaration order.
func Keys() []string {
	out := make([]string, len(dataKeys))
	copy(out, dataKeys)
	return out
}

// Get looks up a data field by key.
func (d Data) Get(key string) (any, bool) {
	switch key {
	case KeyName:
		return d.Name, true
	case KeyAge:
		return d.Age, true
	case KeyCity:
		return d.City, true
	case KeyIsMarried:
		return d.IsMarried, true
	case KeySkills:
		return d.Skills, true
	default:
		return nil, false
	}
}

// Fields returns every data field in declaration order.
func (d Data) Fields() []Field {
	fields := make([]Field, 0, len(dataKeys))
	for _, key := range dataKeys {
		value, _ := d.Get(key)
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields
}

// Get looks up a field by key. The greet key yields the behavior bound to s
// as a func(io.Writer).
func (s *Student) Get(key string) (any, bool) {
	if key == KeyGreet {
		return func(w io.Writer) { s.Greet(w) }, true
	}
	return s.Data.Get(key)
}
