package highlight

import (
	"strings"
	"testing"
)

func TestLine_KnownLanguage(t *testing.T) {
	got := Line("main.go", "func main() {}")
	if got == "" {
		t.Fatal("highlighted line is empty")
	}
	if !strings.Contains(got, "main") {
		t.Errorf("highlighted output lost the code: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("trailing newline should be stripped")
	}
}

func TestLine_UnknownExtension(t *testing.T) {
	in := "some opaque content"
	if got := Line("data.zzzz", in); got != in {
		t.Errorf("unknown file type should pass through, got %q", got)
	}
}

func TestLine_EmptyInput(t *testing.T) {
	if got := Line("main.go", ""); strings.Contains(got, "\n") {
		t.Errorf("empty input produced multi-line output: %q", got)
	}
}
