package scaffold

import (
	"context"
	"fmt"
	"strings"
	"time"

	oerrors "github.com/gostrap/cli/internal/errors"
	"github.com/gostrap/cli/internal/exec"
	"github.com/gostrap/cli/internal/output"
)

// Step is one best-effort bootstrap command run after file generation.
type Step struct {
	// Name describes the step for terminal output.
	Name string

	// Cmd is the external command name.
	Cmd string

	// Args are the command arguments.
	Args []string
}

// StepResult captures the outcome of one bootstrap step.
type StepResult struct {
	Step     Step
	ExitCode int
	Output   string
	Err      error
}

// OK reports whether the step completed successfully.
func (r StepResult) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// BootstrapSteps returns the bootstrap steps for a skeleton, in run order.
func BootstrapSteps(templateName string) []Step {
	steps := []Step{
		{Name: "initialize git repository", Cmd: "git", Args: []string{"init"}},
		{Name: "fetch dependencies", Cmd: "go", Args: []string{"mod", "tidy"}},
	}

	if templateName == "standard" {
		steps = append(steps, Step{Name: "generate query code", Cmd: "sqlc", Args: []string{"generate"}})
	}

	return steps
}

// RunBootstrap runs the bootstrap steps inside dir through the given runner.
// Each step is bounded by timeout; failures are logged as warnings and never
// abort later steps. Caller cancellation stops the sequence.
func RunBootstrap(ctx context.Context, runner exec.CommandRunner, dir string, steps []Step, timeout time.Duration) []StepResult {
	results := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		if ctx.Err() != nil {
			break
		}

		res, err := runner.Run(ctx, step.Cmd, step.Args, exec.RunOpts{
			Dir:     dir,
			Timeout: timeout,
		})

		combined := strings.TrimSpace(res.Stdout + res.Stderr)

		sr := StepResult{
			Step:     step,
			ExitCode: res.ExitCode,
			Output:   combined,
		}

		switch {
		case err != nil:
			sr.Err = fmt.Errorf("%s: %v: %w", step.Name, err, oerrors.ErrExternalTool)
		case res.ExitCode != 0:
			sr.Err = fmt.Errorf("%s: exit code %d: %w", step.Name, res.ExitCode, oerrors.ErrExternalTool)
		}

		if sr.Err != nil {
			output.Warn("bootstrap step failed",
				"step", step.Name,
				"cmd", step.Cmd,
				"exitCode", sr.ExitCode,
				"output", combined)
		} else {
			output.Debug("bootstrap step completed", "step", step.Name, "cmd", step.Cmd)
		}

		results = append(results, sr)
	}

	return results
}
