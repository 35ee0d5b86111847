package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/gostrap/cli/internal/errors"
	"github.com/gostrap/cli/internal/output"
)

// Generator handles project generation from skeletons.
type Generator struct {
	opts Options
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Plan validates the request and builds the scaffold plan without touching
// the filesystem.
func (g *Generator) Plan(req Request) (*Plan, error) {
	skel, err := Get(g.opts.TemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, oerrors.ErrInvalidInput)
	}

	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	targetDir := g.opts.TargetDir
	if targetDir == "" {
		targetDir = req.ProjectName
	}

	// Absolute paths throughout; scaffolding never depends on the process
	// working directory after this point.
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}

	renderer := NewRenderer(TemplateData{
		ProjectName: req.ProjectName,
		ModulePath:  req.ModulePath,
	})

	files, err := renderer.RenderTemplate(skel.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	return &Plan{
		TargetDir:    absDir,
		TemplateName: skel.Name,
		Dirs:         append([]string(nil), skel.ExtraDirs...),
		Files:        files,
	}, nil
}

// Apply executes a plan: target directory check, directory creation, then
// file writes. Every file's parent directory is created before the write.
// Writes always overwrite, so re-running a plan is byte-deterministic.
func (g *Generator) Apply(plan *Plan) (*Result, error) {
	if err := g.checkTargetDir(plan.TargetDir); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(plan.TargetDir, 0o755); err != nil {
		return nil, oerrors.NewFilesystemError(
			fmt.Sprintf("creating target directory: %v", err), plan.TargetDir, "")
	}

	for _, dir := range plan.Dirs {
		abs := filepath.Join(plan.TargetDir, dir)
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return nil, oerrors.NewFilesystemError(
				fmt.Sprintf("creating directory: %v", err), abs, "")
		}
		output.Debug("created directory", "path", dir)
	}

	writtenFiles := make([]string, 0, len(plan.Files))
	for _, f := range plan.Files {
		abs := filepath.Join(plan.TargetDir, f.RelPath)

		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, oerrors.NewFilesystemError(
				fmt.Sprintf("creating directory: %v", err), filepath.Dir(abs), "")
		}

		if err := os.WriteFile(abs, f.Content, 0o644); err != nil {
			return nil, oerrors.NewFilesystemError(
				fmt.Sprintf("writing file: %v", err), abs, "")
		}

		output.Debug("created file", "path", f.RelPath)
		writtenFiles = append(writtenFiles, f.RelPath)
	}

	return &Result{
		TemplateName: plan.TemplateName,
		TargetDir:    plan.TargetDir,
		Dirs:         append([]string(nil), plan.Dirs...),
		Files:        writtenFiles,
	}, nil
}

// Generate builds and applies a plan in one step.
func (g *Generator) Generate(req Request) (*Result, error) {
	plan, err := g.Plan(req)
	if err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"template", plan.TemplateName,
		"name", req.ProjectName,
		"module", req.ModulePath,
		"target", plan.TargetDir)

	return g.Apply(plan)
}

// checkTargetDir validates the target directory against the idempotency
// policy: a file at the target path is fatal, a non-empty directory requires
// Force, an empty or missing directory is fine.
func (g *Generator) checkTargetDir(targetDir string) error {
	info, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oerrors.NewFilesystemError(
			fmt.Sprintf("checking target directory: %v", err), targetDir, "")
	}

	if !info.IsDir() {
		return oerrors.NewFilesystemError(
			"target path exists and is not a directory", targetDir,
			"Remove the file or choose another directory.")
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return oerrors.NewFilesystemError(
			fmt.Sprintf("reading target directory: %v", err), targetDir, "")
	}

	if len(entries) > 0 && !g.opts.Force {
		return oerrors.NewFilesystemError(
			"target directory is not empty", targetDir,
			"Use --force to overwrite the skeleton files in place.")
	}

	return nil
}
