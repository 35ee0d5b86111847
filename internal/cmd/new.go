package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/gostrap/cli/internal/errors"
	"github.com/gostrap/cli/internal/exec"
	"github.com/gostrap/cli/internal/output"
	"github.com/gostrap/cli/internal/scaffold"
)

var (
	newModule    string
	newDir       string
	newTemplate  string
	newOutput    string
	newForce     bool
	newSkipTools bool
	newDryRun    bool
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Scaffold a new backend service project",
		Long: `Scaffold a new Go backend service project from a skeleton.

Templates:
  standard  HTTP service with postgres, migrations, and sqlc (default)
  minimal   HTTP service without a database

On a terminal, missing inputs are collected interactively. Off a terminal
the project name argument is required and the module path is derived from
the configured modulePrefix when --module is omitted.

Examples:
  # Scaffold interactively
  gostrap new

  # Scaffold without prompts
  gostrap new billing-svc --module example.com/org/billing-svc

  # Preview without writing anything
  gostrap new billing-svc --dry-run -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newModule, "module", "m", "",
		"Go module path (derived from project name when omitted)")
	cmd.Flags().StringVarP(&newDir, "dir", "d", "",
		"Directory to scaffold into (defaults to project name)")
	cmd.Flags().StringVarP(&newTemplate, "template", "t", scaffold.DefaultSkeletonName,
		fmt.Sprintf("Template to use (%s)", strings.Join(scaffold.Names(), ", ")))
	cmd.Flags().BoolVar(&newForce, "force", false,
		"Overwrite skeleton files in a non-empty directory")
	cmd.Flags().BoolVar(&newSkipTools, "skip-tools", false,
		"Skip bootstrap tools (git init, go mod tidy, sqlc generate)")
	cmd.Flags().BoolVar(&newDryRun, "dry-run", false,
		"Print the plan without writing anything")
	cmd.Flags().StringVarP(&newOutput, "output", "o", "tree",
		fmt.Sprintf("Dry-run output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Template precedence: flag (if explicitly set) > config > default
	templateName := newTemplate
	if !cmd.Flags().Changed("template") && cfg.Template != "" {
		templateName = cfg.Template
	}
	if !scaffold.IsValidTemplate(templateName) {
		return &oerrors.DetailError{
			Type:    "invalid input",
			Message: fmt.Sprintf("unknown template: %s", templateName),
			Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(scaffold.Names(), ", ")),
			Cause:   oerrors.ErrInvalidInput,
		}
	}

	projectName := ""
	if len(args) > 0 {
		projectName = args[0]
	}
	modulePath := newModule

	if projectName == "" {
		if !output.IsInputTTY() {
			return oerrors.NewInvalidInputError(
				"project name is required",
				"Pass it as the first argument: gostrap new <project-name>")
		}
		if err := promptInputs(&projectName, &modulePath, cfg.ModulePrefix); err != nil {
			return fmt.Errorf("collecting inputs: %w", err)
		}
	}

	if modulePath == "" && !cmd.Flags().Changed("module") {
		modulePath = scaffold.DeriveModulePath(cfg.ModulePrefix, projectName)
	}

	req := scaffold.Request{
		ProjectName: projectName,
		ModulePath:  modulePath,
	}
	gen := scaffold.NewGenerator(scaffold.Options{
		TargetDir:    newDir,
		TemplateName: templateName,
		Force:        newForce,
	})

	if newDryRun {
		return printDryRun(gen, req)
	}

	result, err := gen.Generate(req)
	if err != nil {
		return err
	}

	var failedSteps []scaffold.StepResult
	if !newSkipTools && !cfg.SkipTools {
		runner := exec.NewRealRunner()
		steps := scaffold.BootstrapSteps(result.TemplateName)

		var stepResults []scaffold.StepResult
		spinErr := output.RunWithSpinner(cmd.Context(), func() error {
			stepResults = scaffold.RunBootstrap(cmd.Context(), runner, result.TargetDir, steps, cfg.ToolTimeout)
			return nil
		}, output.WithTitle("Running bootstrap tools..."))
		if spinErr != nil {
			output.Warn("bootstrap tools", "error", spinErr)
		}

		for _, r := range stepResults {
			if !r.OK() {
				failedSteps = append(failedSteps, r)
			}
		}
	}

	printResult(req, result, failedSteps)
	return nil
}

// promptInputs collects the project name and module path interactively.
func promptInputs(projectName, modulePath *string, modulePrefix string) error {
	if *modulePath == "" && *projectName != "" {
		*modulePath = scaffold.DeriveModulePath(modulePrefix, *projectName)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Directory and service name").
				Value(projectName).
				Validate(scaffold.ValidateProjectName),
			huh.NewInput().
				Title("Module path").
				Description("Go module path used in generated imports").
				Value(modulePath).
				Validate(scaffold.ValidateModulePath),
		),
	)

	return form.Run()
}

// printDryRun prints the plan without writing anything.
func printDryRun(gen *scaffold.Generator, req scaffold.Request) error {
	plan, err := gen.Plan(req)
	if err != nil {
		return err
	}

	if output.ParseOutputFormat(newOutput) == output.FormatYAML {
		data, err := yaml.Marshal(plan.Manifest())
		if err != nil {
			return fmt.Errorf("encoding plan: %w", err)
		}
		output.Print(string(data))
		return nil
	}

	output.Println(fmt.Sprintf("Would create project '%s' in %s\n", req.ProjectName, plan.TargetDir))
	output.Print(output.RenderFileTree(filepath.Base(plan.TargetDir), planEntries(plan.Dirs, plan.Manifest().Files)))
	return nil
}

// printResult prints the created file tree, tool-step warnings, and next steps.
func printResult(req scaffold.Request, result *scaffold.Result, failedSteps []scaffold.StepResult) {
	output.Println(fmt.Sprintf("Created project '%s' in %s\n", req.ProjectName, result.TargetDir))
	output.Print(output.RenderFileTree(filepath.Base(result.TargetDir), planEntries(result.Dirs, result.Files)))

	for _, r := range failedSteps {
		output.Println(output.FormatSkipped(fmt.Sprintf("could not %s; run `%s %s` manually",
			r.Step.Name, r.Step.Cmd, strings.Join(r.Step.Args, " "))))
	}

	output.Println("")
	output.Println(output.FormatCheckmark("Next steps:"))
	output.Println(fmt.Sprintf("  cd %s", result.TargetDir))
	output.Println("  cp .env.example .env")
	if result.TemplateName == "standard" {
		output.Println("  make up")
	} else {
		output.Println("  make run")
	}
	output.Println("  curl localhost:8080/healthz")
}

// planEntries builds the tree entries (path -> description) for output.
func planEntries(dirs, files []string) map[string]string {
	entries := make(map[string]string, len(dirs)+len(files))
	for _, d := range dirs {
		entries[d+"/"] = getFileDescription(d + "/")
	}
	for _, f := range files {
		entries[f] = getFileDescription(f)
	}
	return entries
}

// getFileDescription returns a description for a skeleton entry.
func getFileDescription(name string) string {
	descriptions := map[string]string{
		"cmd/server/main.go":     "Entry point",
		"internal/api/api.go":    "Route registration",
		"internal/api/health.go": "Health endpoint",
		"go.mod":                 "Module definition",
		".env.example":           "Environment template",
		"Dockerfile":             "Container build",
		"docker-compose.yml":     "Dev stack",
		"Makefile":               "Build automation",
		"sqlc.yaml":              "Query generation config",
		".gitignore":             "Git ignore list",
		".dockerignore":          "Docker ignore list",
		"README.md":              "Project readme",
		"configs/":               "Configuration files",
		"db/migrations/":         "Database migrations",
		"db/queries/":            "SQL queries",
		"internal/domain/":       "Domain logic",
		"internal/repository/":   "Repository layer",
		"internal/service/":      "Service layer",
	}

	return descriptions[name]
}
