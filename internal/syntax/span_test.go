package syntax

import "testing"

func TestSpanContains(t *testing.T) {
	tests := []struct {
		name  string
		outer Span
		inner Span
		want  bool
	}{
		{"whole line inside", Span{Line: 3, Col: 5, EndLine: 8, EndCol: 2}, LineSpan(5), true},
		{"before start line", Span{Line: 3, EndLine: 8}, LineSpan(2), false},
		{"after end line", Span{Line: 3, EndLine: 8}, At(9, 1), false},
		{"end line absent", Span{Line: 3}, At(3, 40), true},
		{"end line absent next line", Span{Line: 3}, LineSpan(4), false},
		{"start column respected", Span{Line: 3, Col: 5, EndLine: 8}, At(3, 4), false},
		{"start column equal", Span{Line: 3, Col: 5, EndLine: 8}, At(3, 5), true},
		{"end column respected", Span{Line: 3, Col: 5, EndLine: 8, EndCol: 10}, At(8, 11), false},
		{"end column equal", Span{Line: 3, Col: 5, EndLine: 8, EndCol: 10}, At(8, 10), true},
		{"outer without columns", Span{Line: 3, EndLine: 8}, At(3, 1), true},
		{"inner without column on start line", Span{Line: 3, Col: 5, EndLine: 8}, LineSpan(3), true},
		{"middle line ignores columns", Span{Line: 3, Col: 50, EndLine: 8, EndCol: 1}, At(5, 80), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.Contains(tt.inner); got != tt.want {
				t.Errorf("%+v.Contains(%+v) = %v, want %v", tt.outer, tt.inner, got, tt.want)
			}
		})
	}
}

func TestSpanString(t *testing.T) {
	if got := LineSpan(12).String(); got != "12" {
		t.Errorf("LineSpan(12).String() = %q", got)
	}
	if got := At(12, 7).String(); got != "12:7" {
		t.Errorf("At(12, 7).String() = %q", got)
	}
}

func TestKindSet(t *testing.T) {
	s := NewKindSet(KindAnnotation, KindMethodDef)
	if !s.Has(KindAnnotation) || !s.Has(KindMethodDef) {
		t.Errorf("set %b missing members", s)
	}
	if s.Has(KindFile) {
		t.Errorf("set %b unexpectedly has File", s)
	}
}

func TestDeclKinds(t *testing.T) {
	for _, k := range DeclKinds() {
		if !k.IsDecl() {
			t.Errorf("%s is not a declaration kind", k)
		}
	}
	if !KindVarDef.IsDecl() {
		t.Error("VarDef must be a declaration kind")
	}
	if KindAnnotation.IsDecl() {
		t.Error("Annotation must not be a declaration kind")
	}
}

func TestInspectSourceOrder(t *testing.T) {
	root := &Node{Kind: KindFile, Children: []*Node{
		{Kind: KindTypeDef, Text: "A", Children: []*Node{
			{Kind: KindFieldDef, Text: "x"},
		}},
		{Kind: KindTypeDef, Text: "B"},
	}}

	var got []string
	Inspect(root, func(n *Node) bool {
		got = append(got, n.Kind.String()+":"+n.Text)
		return n.Kind != KindTypeDef || n.Text != "A"
	})

	want := []string{"File:", "TypeDef:A", "TypeDef:B"}
	if len(got) != len(want) {
		t.Fatalf("Inspect visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
