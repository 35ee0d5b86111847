package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(content []byte) ([]byte, error) {
	tmpl, err := template.New("file").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderTemplate renders all .tmpl files from a skeleton and returns them in
// walk order (lexical, so deterministic across runs).
func (r *Renderer) RenderTemplate(templateName string) ([]PlannedFile, error) {
	root := path.Join(templateRoot, templateName)

	var files []PlannedFile

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Only .tmpl files are rendered; anything else in the skeleton tree
		// is a mistake we want surfaced, not silently copied.
		if !strings.HasSuffix(p, ".tmpl") {
			return fmt.Errorf("unexpected non-template file %s in skeleton", p)
		}

		content, err := fs.ReadFile(templateFS, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		rendered, err := r.RenderFile(content)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", p, err)
		}

		relPath := strings.TrimPrefix(p, root+"/")
		targetPath := strings.TrimSuffix(relPath, ".tmpl")

		files = append(files, PlannedFile{
			RelPath: targetPath,
			Content: rendered,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking template %s: %w", templateName, err)
	}

	return files, nil
}

// ListTemplateFiles returns the output paths of a skeleton without rendering.
func ListTemplateFiles(templateName string) ([]string, error) {
	root := path.Join(templateRoot, templateName)

	var files []string

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(p, root+"/")
		files = append(files, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateName, err)
	}

	return files, nil
}
