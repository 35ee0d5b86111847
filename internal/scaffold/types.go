// Package scaffold provides the project skeleton system for gostrap new.
package scaffold

// Request carries the two user inputs. Immutable after creation.
type Request struct {
	// ProjectName is the name of the project (filesystem-safe).
	ProjectName string

	// ModulePath is the Go module path, used verbatim in generated imports.
	ModulePath string
}

// Options configures scaffolding behavior.
type Options struct {
	// TargetDir is the directory to scaffold into (defaults to ProjectName).
	TargetDir string

	// TemplateName is the skeleton to use.
	TemplateName string

	// Force allows scaffolding into a non-empty directory, overwriting the
	// skeleton's files deterministically.
	Force bool
}

// PlannedFile is one rendered file waiting to be written.
type PlannedFile struct {
	// RelPath is the output path relative to the target directory.
	RelPath string

	// Content is the rendered content.
	Content []byte
}

// Plan is the ordered set of directories and files a scaffold run will
// create. Directories are always created before any file write.
type Plan struct {
	// TargetDir is the absolute target directory.
	TargetDir string

	// TemplateName is the skeleton the plan was built from.
	TemplateName string

	// Dirs are directories created empty (layer and database directories).
	Dirs []string

	// Files are the rendered files in write order.
	Files []PlannedFile
}

// Manifest is the serializable view of a plan, used for dry-run output.
type Manifest struct {
	TargetDir string   `yaml:"targetDir"`
	Template  string   `yaml:"template"`
	Dirs      []string `yaml:"dirs"`
	Files     []string `yaml:"files"`
}

// Manifest returns the serializable view of the plan.
func (p *Plan) Manifest() Manifest {
	files := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, f.RelPath)
	}

	return Manifest{
		TargetDir: p.TargetDir,
		Template:  p.TemplateName,
		Dirs:      append([]string(nil), p.Dirs...),
		Files:     files,
	}
}

// Result contains the outcome of a scaffold run.
type Result struct {
	// TemplateName is the skeleton that was used.
	TemplateName string

	// TargetDir is the absolute directory where entries were created.
	TargetDir string

	// Dirs is the list of directories created empty.
	Dirs []string

	// Files is the list of files written, relative to TargetDir.
	Files []string
}
