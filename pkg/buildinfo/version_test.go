package buildinfo

import (
	"strings"
	"testing"
)

func TestGetUsesLinkedVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := Get().Version; got != "v1.2.3" {
		t.Errorf("Get().Version = %q, want v1.2.3", got)
	}
	if !strings.Contains(Template(), "version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "v1", Commit: "abc", Date: "today"}.String()
	for _, want := range []string{"version: v1", "commit: abc", "built: today"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
