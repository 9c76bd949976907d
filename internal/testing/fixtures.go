package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/makestatus/internal/statusxml"
)

// WriteDocument writes content to dir/name, creating parent directories, and
// returns the resulting path.
func WriteDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// StatusBlock renders a status_block document holding entries followed by
// XInclude references to hrefs.
func StatusBlock(entries []statusxml.Status, hrefs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>` + "\n")
	fmt.Fprintf(&b, "<status_block xmlns:xi=%q>\n", statusxml.XIncludeNamespace)
	for _, e := range entries {
		fmt.Fprintf(&b, "    <status name=%q value=%q comment=%q/>\n", e.Name, e.Value, e.Comment)
	}
	for _, h := range hrefs {
		fmt.Fprintf(&b, "    <xi:include href=%q/>\n", h)
	}
	b.WriteString("</status_block>\n")
	return b.String()
}

// Entries builds n sequential entries named <prefix>_0 .. <prefix>_<n-1>.
func Entries(prefix string, n int) []statusxml.Status {
	out := make([]statusxml.Status, n)
	for i := range out {
		out[i] = statusxml.Status{
			Name:    fmt.Sprintf("%s_%d", prefix, i),
			Value:   fmt.Sprintf("0x%x", i),
			Comment: fmt.Sprintf("%s status %d", prefix, i),
		}
	}
	return out
}
