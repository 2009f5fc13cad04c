package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) string { return "" }

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Demo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	golden, err := os.ReadFile(filepath.Join("scene", "testdata", "demo.golden"))
	if err != nil {
		t.Fatal(err)
	}
	if stdout.String() != string(golden) {
		t.Errorf("demo output differs from golden file:\n%s", stdout.String())
	}
}

func TestRun_ScriptScene(t *testing.T) {
	path := writeScene(t, "box.shapes", `
grid 6 x 4 fill "."
rectangle (0,0) (5,3) char "#"
line (1,1) (4,2)
`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	want := "######\n#**..#\n#..**#\n######\n"
	if stdout.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", stdout.String(), want)
	}
}

func TestRun_SizeAndFillOverride(t *testing.T) {
	path := writeScene(t, "dot.json", `{"shapes": [{"kind": "line", "points": [{"x": 1, "y": 0}, {"x": 1, "y": 0}]}]}`)

	orig := termSize
	defer func() { termSize = orig }()
	termSize = func() (int, int) { return 3, 9 }

	var stdout, stderr bytes.Buffer
	code := run([]string{"-height", "2", "-fill", "-", path}, noEnv, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if want := "-*-\n---\n"; stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestRun_JSONFromEnvironment(t *testing.T) {
	path := writeScene(t, "line.shapes", "grid 3 x 1\nline (0,0) (2,0) char \"=\"\n")
	env := func(k string) string {
		if k == "SHAPEGRID_FORMAT" {
			return "json"
		}
		return ""
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, env, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	var doc struct {
		Width  int      `json:"width"`
		Height int      `json:"height"`
		Rows   []string `json:"rows"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if doc.Width != 3 || doc.Height != 1 || len(doc.Rows) != 1 || doc.Rows[0] != "===" {
		t.Errorf("document = %+v", doc)
	}
}

func TestRun_OutputFile(t *testing.T) {
	path := writeScene(t, "line.shapes", "grid 4 x 1\nline (0,0) (3,0)\n")
	out := filepath.Join(t.TempDir(), "grid.txt")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", out, path}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "****\n" {
		t.Errorf("file content = %q", data)
	}
	if !strings.Contains(stderr.String(), "Successfully exported to") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_MarkdownBlock(t *testing.T) {
	path := writeScene(t, "README.md", "# Demo\n\n```shapes\ngrid 3 x 1\nline (0,0) (2,0)\n```\n\n"+
		"```shapes\ngrid 3 x 2\nline (2,0) (2,1) char \"|\"\n```\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-block", "2", path}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if want := "  |\n  |\n"; stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{path}, noEnv, &stdout, &stderr); code != 1 {
		t.Errorf("run() without -block = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "multiple shape blocks") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_ListFormats(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-formats"}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	for _, name := range []string{"text", "ruler", "json", "png"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("format list is missing %s:\n%s", name, stdout.String())
		}
	}
}

func TestRun_DebugLogging(t *testing.T) {
	path := writeScene(t, "line.shapes", "grid 4 x 1\nline (0,0) (3,0)\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-log-level", "debug", path}, noEnv, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") {
		t.Errorf("expected debug records on stderr, got %q", stderr.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr string
	}{
		{
			name:    "Unknown flag",
			args:    func(*testing.T) []string { return []string{"-bogus"} },
			wantErr: "invalid usage",
		},
		{
			name:    "Missing scene",
			args:    func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "none.json")} },
			wantErr: "loading scene",
		},
		{
			name: "Script syntax error",
			args: func(t *testing.T) []string {
				return []string{writeScene(t, "bad.shapes", "grid 4 x 4\ncircle (1,1)\n")}
			},
			wantErr: "parsing shape script",
		},
		{
			name: "Shape out of bounds",
			args: func(t *testing.T) []string {
				return []string{writeScene(t, "oob.shapes", "grid 4 x 4\nline (0,0) (4,4)\n")}
			},
			wantErr: "shape 1 (line)",
		},
		{
			name: "Bad PNG colour",
			args: func(t *testing.T) []string {
				return []string{"-format", "png", "-fg", "chartreuse", writeScene(t, "ok.shapes", "grid 2 x 2\n")}
			},
			wantErr: "creating exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args(t), noEnv, &stdout, &stderr); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "Error: ") || !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to mention %q", stderr.String(), tt.wantErr)
			}
		})
	}
}
