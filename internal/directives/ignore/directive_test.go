package ignore

import (
	"testing"

	"github.com/thanujayalath/checkstyle/internal/syntax"
)

func TestParseIgnoreComment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   []string
		wantOk bool
	}{
		{
			name:   "basic ignore all",
			text:   "checkstyle:ignore",
			want:   nil,
			wantOk: true,
		},
		{
			name:   "ignore specific check",
			text:   "checkstyle:ignore membername",
			want:   []string{"membername"},
			wantOk: true,
		},
		{
			name:   "ignore multiple checks",
			text:   "checkstyle:ignore membername,paramnum",
			want:   []string{"membername", "paramnum"},
			wantOk: true,
		},
		{
			name:   "ignore with comment dash",
			text:   "checkstyle:ignore - this is a reason",
			want:   nil,
			wantOk: true,
		},
		{
			name:   "ignore specific with comment",
			text:   "checkstyle:ignore membername - this is a reason",
			want:   []string{"membername"},
			wantOk: true,
		},
		{
			name:   "not an ignore comment",
			text:   " regular comment",
			want:   nil,
			wantOk: false,
		},
		{
			name:   "ignore with leading space",
			text:   " checkstyle:ignore",
			want:   nil,
			wantOk: true,
		},
		{
			name:   "ignore with inline comment",
			text:   "checkstyle:ignore membername // comment",
			want:   []string{"membername"},
			wantOk: true,
		},
		{
			name:   "ignore all with inline comment",
			text:   "checkstyle:ignore // comment",
			want:   nil,
			wantOk: true,
		},
		{
			name:   "ignore dash only",
			text:   "checkstyle:ignore -",
			want:   nil,
			wantOk: true,
		},
		{
			name:   "longer directive name",
			text:   "checkstyle:ignored",
			want:   nil,
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseIgnoreComment(tt.text)
			if ok != tt.wantOk {
				t.Errorf("parseIgnoreComment() ok = %v, want %v", ok, tt.wantOk)
			}
			if len(got) != len(tt.want) {
				t.Errorf("parseIgnoreComment() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseIgnoreComment()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func testFile() *syntax.File {
	return &syntax.File{
		Name: "test.go",
		Comments: []syntax.Comment{
			{Span: syntax.At(3, 1), Text: "//checkstyle:ignore"},
			{Span: syntax.At(6, 1), Text: "//checkstyle:ignore membername"},
			{Span: syntax.At(9, 1), Text: "/* checkstyle:ignore paramnum */"},
			{Span: syntax.At(12, 1), Text: "// just a comment"},
		},
	}
}

func TestBuild(t *testing.T) {
	m := Build(testFile())

	if len(m) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(m))
	}
}

func TestShouldIgnore(t *testing.T) {
	m := Build(testFile())
	member := []string{"membername"}
	param := []string{"pn", "paramnum", "parameternumber"}

	// Line 3: ignore all -> should ignore membername on 3 and 4
	if !m.ShouldIgnore(3, member) || !m.ShouldIgnore(4, member) {
		t.Error("Expected line 3-4 to ignore membername")
	}

	// Line 6: ignore membername -> should ignore membername
	if !m.ShouldIgnore(7, member) {
		t.Error("Expected line 7 to ignore membername")
	}

	// Line 6: ignore membername -> should NOT ignore paramnum
	if m.ShouldIgnore(6, param) || m.ShouldIgnore(7, param) {
		t.Error("Expected line 6-7 to NOT ignore paramnum")
	}

	// Line 9: alias match
	if !m.ShouldIgnore(10, param) {
		t.Error("Expected line 10 to ignore a check aliased paramnum")
	}

	// Line 5 is two lines after the ignore-all directive
	if m.ShouldIgnore(5, member) {
		t.Error("Expected line 5 to NOT be ignored")
	}

	if m.ShouldIgnore(100, member) {
		t.Error("Expected line 100 to NOT ignore membername")
	}
}

func TestGetUnusedIgnores(t *testing.T) {
	m := Build(testFile())

	unused := m.GetUnusedIgnores()
	if len(unused) != 3 {
		t.Fatalf("Expected 3 unused ignores, got %d", len(unused))
	}
	if unused[0].Span.Line != 3 || len(unused[0].Checkers) != 0 {
		t.Errorf("unused[0] = %+v", unused[0])
	}
	if unused[1].Span.Line != 6 || len(unused[1].Checkers) != 1 || unused[1].Checkers[0] != "membername" {
		t.Errorf("unused[1] = %+v", unused[1])
	}
}

func TestGetUnusedIgnoresWithUsed(t *testing.T) {
	m := Build(testFile())

	m.ShouldIgnore(4, []string{"whatever"})
	m.ShouldIgnore(7, []string{"membername"})
	m.ShouldIgnore(10, []string{"paramnum"})

	if unused := m.GetUnusedIgnores(); len(unused) != 0 {
		t.Errorf("Expected 0 unused ignores, got %+v", unused)
	}
}
