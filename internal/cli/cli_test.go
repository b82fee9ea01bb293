package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/reviewers-cli/reviewers/internal/config"
	"github.com/reviewers-cli/reviewers/internal/output"
)

// resetFlags resets all package-level flag variables to their defaults.
func resetFlags() {
	flagBase = ""
	flagContributor = ""
	flagOutput = ""
	flagMargin = -1
	flagJobs = 0
	flagNoColor = false
	flagVerbose = false
}

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	if m := buildOverrides(); len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagBase = "main"
	flagOutput = "raw"
	flagMargin = 0
	flagJobs = 4
	flagNoColor = true

	m := buildOverrides()
	want := map[string]string{
		"base":    "main",
		"format":  "raw",
		"margin":  "0",
		"jobs":    "4",
		"noColor": "true",
	}
	if len(m) != len(want) {
		t.Fatalf("buildOverrides() = %v, want %v", m, want)
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("overrides[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestBuildOverrides_MarginZeroIsSet(t *testing.T) {
	resetFlags()
	flagMargin = 0

	m := buildOverrides()
	if m["margin"] != "0" {
		t.Errorf("--margin=0 should override the default, got %v", m)
	}

	cfg, err := config.Load(m)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Margin != 0 {
		t.Errorf("Margin = %d, want 0", cfg.Margin)
	}
}

func TestRelToRoot_FromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	// Derive the root from the working directory so the comparison is
	// immune to symlinked temp directories.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	root := filepath.Dir(cwd)

	files, err := relToRoot(root, []string{
		"file.txt",
		"../top.go",
		filepath.Join(root, "abs.go"),
	})
	if err != nil {
		t.Fatalf("relToRoot error: %v", err)
	}
	want := []string{"sub/file.txt", "top.go", "abs.go"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("relToRoot = %v, want %v", files, want)
	}
}

func TestRelToRoot_NoArgs(t *testing.T) {
	files, err := relToRoot("/anywhere", nil)
	if err != nil {
		t.Fatalf("relToRoot error: %v", err)
	}
	if files != nil {
		t.Errorf("relToRoot(nil) = %v, want nil", files)
	}
}

func TestPickWriter(t *testing.T) {
	resetFlags()

	w, err := pickWriter(config.Config{Format: "text"})
	if err != nil {
		t.Fatalf("pickWriter error: %v", err)
	}
	if _, ok := w.(*output.TextWriter); !ok {
		t.Errorf("got %T, want *output.TextWriter", w)
	}

	flagContributor = "Sally"
	w, err = pickWriter(config.Config{Format: "text"})
	if err != nil {
		t.Fatalf("pickWriter error: %v", err)
	}
	if _, ok := w.(*output.ContribWriter); !ok {
		t.Errorf("contributor filter should select diff mode, got %T", w)
	}

	// Raw dumps the full report even with a contributor filter set.
	w, err = pickWriter(config.Config{Format: "raw"})
	if err != nil {
		t.Fatalf("pickWriter error: %v", err)
	}
	if _, ok := w.(*output.RawWriter); !ok {
		t.Errorf("got %T, want *output.RawWriter", w)
	}

	if _, err := pickWriter(config.Config{Format: "nope"}); err == nil {
		t.Error("unknown format should error")
	}
}
