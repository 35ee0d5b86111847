package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() TemplateData {
	return TemplateData{
		ProjectName: "billing-svc",
		ModulePath:  "example.com/org/billing-svc",
	}
}

func fileByPath(t *testing.T, files []PlannedFile, relPath string) PlannedFile {
	t.Helper()
	for _, f := range files {
		if f.RelPath == relPath {
			return f
		}
	}
	t.Fatalf("no planned file %q", relPath)
	return PlannedFile{}
}

func TestRenderFile(t *testing.T) {
	r := NewRenderer(testData())

	out, err := r.RenderFile([]byte("module {{ .ModulePath }}\n"))
	require.NoError(t, err)
	assert.Equal(t, "module example.com/org/billing-svc\n", string(out))
}

func TestRenderTemplate_Standard(t *testing.T) {
	r := NewRenderer(testData())

	files, err := r.RenderTemplate("standard")
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RelPath)
	}

	expected := []string{
		".dockerignore",
		".env.example",
		".gitignore",
		"Dockerfile",
		"Makefile",
		"README.md",
		"cmd/server/main.go",
		"docker-compose.yml",
		"go.mod",
		"internal/api/api.go",
		"internal/api/health.go",
		"sqlc.yaml",
	}
	assert.ElementsMatch(t, expected, paths)

	// The module path appears verbatim in the entry point's import list.
	mainGo := fileByPath(t, files, "cmd/server/main.go")
	assert.Contains(t, string(mainGo.Content), `"example.com/org/billing-svc/internal/api"`)

	// No substitution on the port line.
	env := fileByPath(t, files, ".env.example")
	assert.Contains(t, string(env.Content), "APP_PORT=8080")
	assert.Contains(t, string(env.Content), "DB_NAME=billing-svc")

	goMod := fileByPath(t, files, "go.mod")
	assert.Contains(t, string(goMod.Content), "module example.com/org/billing-svc")
}

func TestRenderTemplate_Minimal(t *testing.T) {
	r := NewRenderer(testData())

	files, err := r.RenderTemplate("minimal")
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RelPath)
	}

	assert.Contains(t, paths, "cmd/server/main.go")
	assert.NotContains(t, paths, "sqlc.yaml")
	assert.NotContains(t, paths, "docker-compose.yml")
}

func TestRenderTemplate_Deterministic(t *testing.T) {
	r := NewRenderer(testData())

	first, err := r.RenderTemplate("standard")
	require.NoError(t, err)
	second, err := r.RenderTemplate("standard")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].RelPath, second[i].RelPath)
		assert.Equal(t, first[i].Content, second[i].Content)
	}
}

func TestRenderTemplate_Unknown(t *testing.T) {
	r := NewRenderer(testData())

	_, err := r.RenderTemplate("bogus")
	assert.Error(t, err)
}

func TestListTemplateFiles(t *testing.T) {
	files, err := ListTemplateFiles("standard")
	require.NoError(t, err)

	assert.Contains(t, files, "cmd/server/main.go")
	assert.Contains(t, files, "Makefile")

	// .tmpl suffixes are stripped.
	for _, f := range files {
		assert.NotContains(t, f, ".tmpl")
	}
}
