package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("proj", nil))
}

func TestRenderFileTree_Basic(t *testing.T) {
	out := RenderFileTree("billing-svc", map[string]string{
		"Makefile":               "Build automation",
		"cmd/server/main.go":     "Entry point",
		"internal/api/health.go": "Health handler",
	})

	assert.Contains(t, out, "billing-svc/")
	assert.Contains(t, out, "Makefile")
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "Entry point")

	// Directories render with a trailing slash.
	assert.Contains(t, out, "cmd/")
	assert.Contains(t, out, "internal/")
}

func TestRenderFileTree_DirectoryEntries(t *testing.T) {
	out := RenderFileTree("proj", map[string]string{
		"db/migrations/": "Database migrations",
		"Makefile":       "",
	})

	assert.Contains(t, out, "migrations/")
	assert.Contains(t, out, "Database migrations")
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("proj", map[string]string{
		"zz.txt":    "",
		"aa/bb.txt": "",
	})

	dirIdx := strings.Index(out, "aa/")
	fileIdx := strings.Index(out, "zz.txt")
	assert.Less(t, dirIdx, fileIdx)
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("proj", []string{"a.txt", "b.txt"})
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"tree", FormatTree},
		{"", FormatTree},
		{"bogus", FormatTree},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutputFormat(tt.in))
		})
	}
}
