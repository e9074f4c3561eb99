package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScene writes a scene file into a temp dir and returns its path.
func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

// execute runs the CLI with args and returns the resulting error.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

const agreeingScene = `
name = "agreeing"

[window]
width = 100
height = 100

[root]
id = 1
kind = "Root"

[[root.children]]
id = 2
kind = "Text"

[report.1]
natural_width = 5
natural_height = 5

[report.2]
natural_width = 5
natural_height = 5
`

func TestCheck_Agreement(t *testing.T) {
	path := writeScene(t, agreeingScene)
	if err := execute(t, "check", path); err != nil {
		t.Errorf("check should pass for an agreeing report, got: %v", err)
	}
}

func TestCheck_Disagreement(t *testing.T) {
	// The reported natural width of the root is off by 50 units.
	path := writeScene(t, strings.Replace(agreeingScene,
		"[report.1]\nnatural_width = 5", "[report.1]\nnatural_width = 55", 1))
	err := execute(t, "check", path)
	if err == nil {
		t.Fatal("check should fail for a disagreeing report")
	}
	if !strings.Contains(err.Error(), "disagree") {
		t.Errorf("error = %v, want a disagreement summary", err)
	}
}

func TestCheck_MissingScene(t *testing.T) {
	if err := execute(t, "check", filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("check should fail for a missing scene file")
	}
}

func TestCheck_SceneWithoutReport(t *testing.T) {
	path := writeScene(t, `
[window]
width = 100
height = 100

[root]
id = 1
kind = "Root"
`)
	err := execute(t, "check", path)
	if err == nil || !strings.Contains(err.Error(), "--url or --snapshot") {
		t.Errorf("error = %v, want a hint at report sources", err)
	}
}

func TestDump_WritesFile(t *testing.T) {
	path := writeScene(t, agreeingScene)
	out := filepath.Join(t.TempDir(), "dump.json")

	if err := execute(t, "dump", path, "-o", out); err != nil {
		t.Fatalf("dump error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), `"kind": "Root"`) {
		t.Errorf("dump output missing records: %s", data)
	}
}

func TestRender_WritesSVG(t *testing.T) {
	path := writeScene(t, agreeingScene)
	out := filepath.Join(t.TempDir(), "layout.svg")

	if err := execute(t, "render", path, "-o", out); err != nil {
		t.Fatalf("render error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("output does not look like SVG: %.60s", data)
	}
}

func TestGraph_EmitsDOT(t *testing.T) {
	path := writeScene(t, agreeingScene)
	out := filepath.Join(t.TempDir(), "tree.dot")

	if err := execute(t, "graph", path, "-o", out); err != nil {
		t.Fatalf("graph error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !strings.Contains(string(data), `"1" -> "2";`) {
		t.Errorf("DOT output missing edge: %s", data)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"check", "dump", "render", "graph", "tree", "inspect", "listen", "snapshots", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
