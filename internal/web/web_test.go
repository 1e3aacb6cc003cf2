package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestIndex(t *testing.T) {
	page := string(Index())
	for _, want := range []string{"AIDA Conference Assistant", `maxlength="500"`, "/api/chat"} {
		if !strings.Contains(page, want) {
			t.Errorf("index page missing %q", want)
		}
	}
}

func TestStatic(t *testing.T) {
	if _, err := fs.Stat(Static(), "index.html"); err != nil {
		t.Errorf("index.html not in static fs: %v", err)
	}
}
