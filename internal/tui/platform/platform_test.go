package platform

import (
	"testing"
)

func TestCopyToClipboard_NoToolAvailable(t *testing.T) {
	// With an empty PATH no clipboard helper can be found.
	t.Setenv("PATH", t.TempDir())

	tool, err := CopyToClipboard("hello")
	if err == nil {
		t.Fatal("expected error when no clipboard command is available")
	}
	if tool != "" {
		t.Fatalf("tool = %q, want empty on failure", tool)
	}
}
