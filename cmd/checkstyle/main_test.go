package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const javaSource = `package com.example;

/** Documented. */
public class Sample {
    @SuppressWarnings("membername")
    private int Suppressed_Field;
    private int Reported_Field;
}
`

const goSource = `package sample

// Config is documented.
type Config struct {
	bad_name int
}
`

func TestCheck(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/Sample.java":        javaSource,
		"pkg/config.go":          goSource,
		"pkg/gen/skip.go":        goSource,
		"vendor/dep/dep.go":      goSource,
		".hidden/hidden.go":      goSource,
		"README.md":              "# not source",
		"pkg/testdata/broken.go": "package",
	})

	out, err := execute(t, "--color", "never", "--exclude", "pkg/gen/**", dir)
	if !errors.Is(err, errFindings) {
		t.Fatalf("Execute() error = %v, want errFindings", err)
	}

	want := []string{
		filepath.Join(dir, "pkg", "config.go") + ":5:2: [error] Name 'bad_name' must match pattern '^(_|[a-zA-Z][a-zA-Z0-9]*)$'. (membername)",
		filepath.Join(dir, "src", "Sample.java") + ":7:17: [error] Name 'Reported_Field' must match pattern '^(_|[a-zA-Z][a-zA-Z0-9]*)$'. (membername)",
		"2 file(s) checked: 2 error(s), 0 warning(s), 0 info(s)",
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckSeveralPaths(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a/Sample.java": javaSource,
		"b/config.go":   goSource,
		"c/config.go":   goSource,
	})

	out, err := execute(t, "--color", "never", filepath.Join(dir, "a", "Sample.java"), filepath.Join(dir, "b"))
	if !errors.Is(err, errFindings) {
		t.Fatalf("Execute() error = %v, want errFindings", err)
	}
	if !strings.Contains(out, "2 file(s) checked: 2 error(s)") {
		t.Errorf("unexpected summary in %q", out)
	}
	if strings.Contains(out, filepath.Join(dir, "c")) {
		t.Errorf("output %q reports a path that was not given", out)
	}
}

func TestCheckConfig(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"Sample.java": javaSource,
		"checker.toml": `name = "Checker"

[[children]]
name = "TreeWalker"

  [[children.children]]
  name = "MemberName"

  [children.children.properties]
  severity = "warning"
`,
	})

	out, err := execute(t, "--color", "never", "--config", filepath.Join(dir, "checker.toml"), filepath.Join(dir, "Sample.java"))
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil for warnings", err)
	}
	if !strings.Contains(out, "1 file(s) checked: 0 error(s), 2 warning(s), 0 info(s)") {
		t.Errorf("unexpected summary in %q", out)
	}

	_, err = execute(t, "--color", "never", "--fail-on", "warning", "--config", filepath.Join(dir, "checker.toml"), filepath.Join(dir, "Sample.java"))
	if !errors.Is(err, errFindings) {
		t.Errorf("Execute(--fail-on warning) error = %v, want errFindings", err)
	}
}

func TestCheckParseFailure(t *testing.T) {
	dir := writeTree(t, map[string]string{"Broken.java": "class {"})

	out, err := execute(t, "--color", "never", dir)
	if !errors.Is(err, errFindings) {
		t.Fatalf("Execute() error = %v, want errFindings", err)
	}
	if !strings.Contains(out, "Broken.java:") || !strings.Contains(out, "1 file(s) failed") {
		t.Errorf("output %q does not report the parse failure", out)
	}
}

func TestFlagErrors(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"--fail-on", "ignore", dir},
		{"--color", "sometimes", dir},
		{"--exclude", "[", dir},
		{"--config", filepath.Join(dir, "missing.yaml"), dir},
		{filepath.Join(dir, "missing")},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil || errors.Is(err, errFindings) {
			t.Errorf("Execute(%v) error = %v, want a usage error", args, err)
		}
	}
}

func TestModules(t *testing.T) {
	out, err := execute(t, "modules")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"SuppressWarningsHolder", "SuppressWarningsFilter", "naming.MemberNameCheck"} {
		if !strings.Contains(out, name+"\n") {
			t.Errorf("modules output lacks %s:\n%s", name, out)
		}
	}
}
