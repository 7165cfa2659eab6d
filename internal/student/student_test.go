package student_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"studentcard/internal/student"
)

func TestDotAndBracketAccessAgree(t *testing.T) {
	s := student.Example()

	static := map[string]any{
		student.KeyName:      s.Name,
		student.KeyAge:       s.Age,
		student.KeyCity:      s.City,
		student.KeyIsMarried: s.IsMarried,
		student.KeySkills:    s.Skills,
	}
	for _, key := range student.Keys() {
		got, ok := s.Get(key)
		if !ok {
			t.Fatalf("Get(%q) reported missing field", key)
		}
		if diff := cmp.Diff(static[key], got); diff != "" {
			t.Fatalf("Get(%q) mismatch (-dot +bracket):\n%s", key, diff)
		}
	}
}

func TestExampleValues(t *testing.T) {
	want := student.Data{
		Name:      "Kunal Sahu",
		Age:       25,
		City:      "Bhopal",
		IsMarried: false,
		Skills:    []string{"JavaScript", "React", "Node.js"},
	}
	if diff := cmp.Diff(want, student.Example().Data); diff != "" {
		t.Fatalf("unexpected example record (-want +got):\n%s", diff)
	}
}

func TestGetUnknownKey(t *testing.T) {
	s := student.Example()
	if v, ok := s.Get("email"); ok || v != nil {
		t.Fatalf("expected unknown key to be missing, got %v %v", v, ok)
	}
	if _, ok := s.Data.Get(student.KeyGreet); ok {
		t.Fatal("plain data must not expose greet")
	}
}

func TestFieldsFollowDeclarationOrder(t *testing.T) {
	fields := student.Example().Fields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	want := []string{"name", "age", "city", "isMarried", "skills"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestGreetReadsNameAtCallTime(t *testing.T) {
	s := student.Example()

	var buf bytes.Buffer
	s.Greet(&buf)
	if got := buf.String(); got != "Hello, Kunal Sahu\n" {
		t.Fatalf("unexpected greeting %q", got)
	}

	s.Name = "Asha Verma"
	buf.Reset()
	s.Greet(&buf)
	if got := buf.String(); got != "Hello, Asha Verma\n" {
		t.Fatalf("greeting did not follow name change: %q", got)
	}
}

func TestBracketGreetIsBound(t *testing.T) {
	s := student.Example()
	value, ok := s.Get(student.KeyGreet)
	if !ok {
		t.Fatal("expected greet to be present")
	}
	greet, ok := value.(func(io.Writer))
	if !ok {
		t.Fatalf("greet has unexpected type %T", value)
	}

	s.Name = "Ravi"
	var buf bytes.Buffer
	greet(&buf)
	if got := buf.String(); got != "Hello, Ravi\n" {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestBindReplacesAndRestoresBehavior(t *testing.T) {
	s := student.Example()
	s.Bind(func(self *student.Student, w io.Writer) {
		io.WriteString(w, "Namaste, "+self.City)
	})

	var buf bytes.Buffer
	s.Greet(&buf)
	if got := buf.String(); got != "Namaste, Bhopal" {
		t.Fatalf("unexpected custom greeting %q", got)
	}

	s.Bind(nil)
	buf.Reset()
	s.Greet(&buf)
	if got := buf.String(); got != "Hello, Kunal Sahu\n" {
		t.Fatalf("expected default greeting after reset, got %q", got)
	}
}

func TestZeroStudentGreets(t *testing.T) {
	var s student.Student
	s.Name = "Zero"
	var buf bytes.Buffer
	s.Greet(&buf)
	if got := buf.String(); got != "Hello, Zero\n" {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestCloneDoesNotShareSkills(t *testing.T) {
	orig := student.Example().Data
	clone := orig.Clone()
	clone.Skills[0] = "Go"
	if orig.Skills[0] != "JavaScript" {
		t.Fatalf("clone mutated original skills: %v", orig.Skills)
	}
}

func TestStringInspectForm(t *testing.T) {
	got := student.Example().Data.String()
	want := "{ name: 'Kunal Sahu', age: 25, city: 'Bhopal', isMarried: false, skills: [ 'JavaScript', 'React', 'Node.js' ] }"
	if got != want {
		t.Fatalf("unexpected inspect form:\n got %s\nwant %s", got, want)
	}
}

func TestStringEscapesQuotesAndEmptySkills(t *testing.T) {
	d := student.Data{Name: "O'Neil", City: `C:\`}
	got := d.String()
	want := `{ name: 'O\'Neil', age: 0, city: 'C:\\', isMarried: false, skills: [] }`
	if got != want {
		t.Fatalf("unexpected inspect form:\n got %s\nwant %s", got, want)
	}
}
