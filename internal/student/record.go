package student

import (
	"fmt"
	"io"
)

// Data holds the serializable fields of a student record in declaration order.
type Data struct {
	Name      string   `json:"name" toml:"name" yaml:"name"`
	Age       int      `json:"age" toml:"age" yaml:"age"`
	City      string   `json:"city" toml:"city" yaml:"city"`
	IsMarried bool     `json:"isMarried" toml:"isMarried" yaml:"isMarried"`
	Skills    []string `json:"skills" toml:"skills" yaml:"skills"`
}

// Behavior is executable logic attached to a Student. It receives its owner
// explicitly and reads fields at call time.
type Behavior func(self *Student, w io.Writer)

// Student is a record with behavior.
type Student struct {
	Data
	greet Behavior
}

// Example returns the literal demo record.
func Example() *Student {
	return New(Data{
		Name:      "Kunal Sahu",
		Age:       25,
		City:      "Bhopal",
		IsMarried: false,
		Skills:    []string{"JavaScript", "React", "Node.js"},
	})
}

// New wraps d with the default greeting behavior.
func New(d Data) *Student {
	return &Student{Data: d, greet: defaultGreet}
}

// Bind replaces the greeting behavior. A nil behavior restores the default.
func (s *Student) Bind(b Behavior) {
	if b == nil {
		b = defaultGreet
	}
	s.greet = b
}

// Greet invokes the bound behavior against s.
func (s *Student) Greet(w io.Writer) {
	greet := s.greet
	if greet == nil {
		greet = defaultGreet
	}
	greet(s, w)
}

// Greeting returns the default greeting text for the current name.
func (s *Student) Greeting() string {
	return "Hello, " + s.Name
}

func defaultGreet(self *Student, w io.Writer) {
	fmt.Fprintln(w, self.Greeting())
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := d
	if d.Skills != nil {
		out.Skills = make([]string, len(d.Skills))
		copy(out.Skills, d.Skills)
	}
	return out
}
