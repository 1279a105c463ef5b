package checks

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
	"github.com/thanujayalath/checkstyle/internal/walker"
)

func ident(name string, line, col int) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindIdent, Text: name, Span: syntax.At(line, col)}
}

func param(name string, line, col int) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindParameter, Text: name, Span: syntax.At(line, col), Children: []*syntax.Node{ident(name, line, col)}}
}

func sampleFile(pkg string) *syntax.File {
	method := &syntax.Node{Kind: syntax.KindMethodDef, Text: "many", Span: syntax.At(10, 5), Children: []*syntax.Node{
		{Kind: syntax.KindOther, Children: []*syntax.Node{{Kind: syntax.KindAnnotation, Text: "Override"}}},
		ident("many", 10, 17),
		param("a", 10, 22), param("b", 10, 29), param("c", 10, 36),
		{Kind: syntax.KindBlock, Span: syntax.At(10, 40), Children: []*syntax.Node{
			{Kind: syntax.KindCatch, Span: syntax.At(12, 11), Children: []*syntax.Node{
				ident("java.lang.Exception", 12, 18), ident("IOException", 12, 40),
			}},
		}},
	}}
	mainFn := &syntax.Node{Kind: syntax.KindMethodDef, Text: "main", Span: syntax.At(20, 5), Children: []*syntax.Node{
		ident("main", 20, 24), param("args", 20, 38),
	}}
	documented := &syntax.Node{Kind: syntax.KindTypeDef, Text: "Doc", Span: syntax.At(30, 1), Children: []*syntax.Node{
		{Kind: syntax.KindDoc, Text: "/** Doc. */"}, ident("Doc", 30, 7),
	}}
	class := &syntax.Node{Kind: syntax.KindTypeDef, Text: "C", Span: syntax.At(3, 1), Children: []*syntax.Node{
		ident("C", 3, 14),
		{Kind: syntax.KindFieldDef, Text: "good", Children: []*syntax.Node{ident("good", 5, 17), ident("Bad", 5, 25)}},
		{Kind: syntax.KindConstDef, Text: "MAX_SIZE", Children: []*syntax.Node{ident("MAX_SIZE", 6, 30), ident("lower", 6, 45)}},
		method, mainFn, documented,
	}}
	return &syntax.File{
		Name:  "C.java",
		Lines: 40,
		Root:  &syntax.Node{Kind: syntax.KindFile, Text: pkg, Children: []*syntax.Node{class}},
	}
}

func run(t *testing.T, m *config.Module, file *syntax.File) []string {
	t.Helper()

	r := registry.New()
	Register(r)
	e, err := r.Lookup(m.Name)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", m.Name, err)
	}
	c, err := e.NewCheck(m)
	if err != nil {
		t.Fatalf("NewCheck(%s) error: %v", m.Name, err)
	}

	var out []string
	for _, v := range walker.New(c).Walk(file).Violations {
		out = append(out, v.String())
	}
	return out
}

func TestChecks(t *testing.T) {
	tests := []struct {
		name   string
		module *config.Module
		pkg    string
		want   []string
	}{
		{
			name:   "member name",
			module: config.New("MemberName"),
			want:   []string{"5:25: Name 'Bad' must match pattern '^[a-z][a-zA-Z0-9]*$'."},
		},
		{
			name:   "member name custom format",
			module: config.New("MemberName").With("format", "^[A-Za-z]+$"),
			want:   nil,
		},
		{
			name:   "constant name",
			module: config.New("ConstantName"),
			want:   []string{"6:45: Name 'lower' must match pattern '^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$'."},
		},
		{
			name:   "parameter number",
			module: config.New("ParameterNumber").With("max", 2),
			want:   []string{"10:17: More than 2 parameters (found 3)."},
		},
		{
			name:   "parameter number ignores overridden",
			module: config.New("ParameterNumber").With("max", 2).With("ignoreOverridden", true),
			want:   nil,
		},
		{
			name:   "parameter number default max",
			module: config.New("sizes.ParameterNumberCheck"),
			want:   nil,
		},
		{
			name:   "illegal catch",
			module: config.New("IllegalCatch"),
			want:   []string{"12:11: Catching 'java.lang.Exception' is not allowed."},
		},
		{
			name:   "illegal catch custom list",
			module: config.New("IllegalCatch").With("illegalClassNames", "IOException"),
			want:   []string{"12:11: Catching 'IOException' is not allowed."},
		},
		{
			name:   "uncommented main",
			module: config.New("UncommentedMain"),
			pkg:    "com.example",
			want:   []string{"20: Uncommented main method found."},
		},
		{
			name:   "uncommented main in main package",
			module: config.New("UncommentedMain"),
			pkg:    "main",
			want:   nil,
		},
		{
			name:   "uncommented main excluded package",
			module: config.New("UncommentedMain").With("excludedPackages", `^com\.example$`),
			pkg:    "com.example",
			want:   nil,
		},
		{
			name:   "javadoc type",
			module: config.New("JavadocType"),
			want:   []string{"3: Missing a Javadoc comment."},
		},
		{
			name:   "file length",
			module: config.New("FileLength").With("max", 30),
			want:   []string{"1: File length is 40 lines (max allowed is 30)."},
		},
		{
			name:   "file length within limit",
			module: config.New("FileLength"),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(t, tt.module, sampleFile(tt.pkg))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeverityAndIdentity(t *testing.T) {
	r := registry.New()
	Register(r)
	e, _ := r.Lookup("MemberName")
	c, err := e.NewCheck(config.New("MemberName").WithID("fields").With("severity", "info"))
	if err != nil {
		t.Fatal(err)
	}

	vs := walker.New(c).Walk(sampleFile("")).Violations
	if len(vs) != 1 {
		t.Fatalf("got %d violations, want 1", len(vs))
	}
	want := check.Identity{Type: MemberNameTypeName, ID: "fields"}
	if vs[0].Producer != want || vs[0].Severity != check.SeverityInfo {
		t.Errorf("violation = %+v", vs[0])
	}
}

func TestFactoryErrors(t *testing.T) {
	r := registry.New()
	Register(r)

	bad := []*config.Module{
		config.New("MemberName").With("format", "("),
		config.New("ParameterNumber").With("max", "seven"),
		config.New("ParameterNumber").With("ignoreOverridden", "sometimes"),
		config.New("FileLength").With("max", "x"),
		config.New("UncommentedMain").With("excludedPackages", "["),
		config.New("JavadocType").With("severity", "loud"),
		config.New("IllegalCatch").With("severity", "loud"),
	}
	for _, m := range bad {
		e, err := r.Lookup(m.Name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := e.NewCheck(m); err == nil {
			t.Errorf("NewCheck(%s %v) succeeded, want error", m.Name, m.Properties)
		}
	}
}
