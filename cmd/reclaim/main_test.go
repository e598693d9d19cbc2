package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, base string) string {
	t.Helper()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[log]\nlevel = %q\nformat = %q\ndir = %q\n",
		"error", "json", filepath.Join(base, "logs"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIJunkCommand(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := filepath.Join(base, "source")
	target := filepath.Join(base, "target")
	for name, content := range map[string]string{
		"f001.jpg": "alpha",
		"f002.jpg": "beta",
		"f003.txt": "ignored",
	} {
		if err := os.MkdirAll(source, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(source, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := runCLI(t, configPath, "junk", source, target, "--ext", "jpg")
	if err != nil {
		t.Fatalf("junk: %v", err)
	}
	if !strings.Contains(out, "Moved") {
		t.Fatalf("summary missing from output: %q", out)
	}

	for _, name := range []string{"f001.jpg", "f002.jpg"} {
		if _, err := os.Stat(filepath.Join(target, "jpg_files", name)); err != nil {
			t.Fatalf("%s not bucketed: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(source, "f003.txt")); err != nil {
		t.Fatalf("txt file must stay behind: %v", err)
	}
}

func TestCLIJunkRequiresExtensions(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	_, _, err := runCLI(t, configPath, "junk", base, filepath.Join(base, "out"))
	if err == nil || !strings.Contains(err.Error(), "extension") {
		t.Fatalf("expected an extension error, got %v", err)
	}
}

func TestCLIDedupeCommand(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	dir := filepath.Join(base, "dump")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range map[string]string{
		"a.bin": "identical",
		"b.bin": "identical",
		"c.bin": "unique",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := runCLI(t, configPath, "dedupe", dir)
	if err != nil {
		t.Fatalf("dedupe: %v", err)
	}
	if !strings.Contains(out, "Duplicates deleted") {
		t.Fatalf("summary missing from output: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.bin")); err != nil {
		t.Fatalf("canonical file must survive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.bin")); !os.IsNotExist(err) {
		t.Fatalf("duplicate not removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.bin")); err != nil {
		t.Fatalf("unique file must survive: %v", err)
	}
}

func TestCLIDedupeDryRun(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	dir := filepath.Join(base, "dump")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.bin", "b.bin"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("same"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := runCLI(t, configPath, "dedupe", dir, "--dry-run")
	if err != nil {
		t.Fatalf("dedupe --dry-run: %v", err)
	}
	if !strings.Contains(out, "Dry run") {
		t.Fatalf("dry-run footer missing: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.bin")); err != nil {
		t.Fatalf("dry run deleted a file: %v", err)
	}
}

func TestCLICountCommand(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "tree")
	for _, name := range []string{"a.jpg", "b.jpg", "sub/c.mp3"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := runCLI(t, "", "count", dir)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	for _, want := range []string{"jpg", "mp3", "3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("count output missing %q: %q", want, out)
		}
	}
	// The table style renders the footer label in upper case.
	if !strings.Contains(strings.ToUpper(out), "TOTAL") {
		t.Fatalf("count output missing total row: %q", out)
	}
}

func TestCLISplitCommand(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	source := filepath.Join(base, "source")
	output := filepath.Join(base, "output")
	if err := os.MkdirAll(source, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.bin", "b.bin"} {
		if err := os.WriteFile(filepath.Join(source, name), make([]byte, 800), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := runCLI(t, configPath, "split", source, output, "--max-size", "1KiB")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !strings.Contains(out, "2 batches") {
		t.Fatalf("unexpected split output: %q", out)
	}
	if _, err := os.Stat(filepath.Join(output, "batch_001")); err != nil {
		t.Fatalf("batch_001 missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(output, "batch_002")); err != nil {
		t.Fatalf("batch_002 missing: %v", err)
	}
}

func TestCLIConfigInitAndShow(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "reclaim.toml")

	out, _, err := runCLI(t, "", "config", "init", "--path", configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, configPath) {
		t.Fatalf("init output missing path: %q", out)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", configPath); err == nil {
		t.Fatal("second init without --overwrite must fail")
	}
	if _, _, err := runCLI(t, "", "config", "init", "--path", configPath, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"organize.placeholder", "Unknown", "cache.enabled"} {
		if !strings.Contains(out, want) {
			t.Fatalf("show output missing %q: %q", want, out)
		}
	}
}
