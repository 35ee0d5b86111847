package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gostrap/cli/internal/output"
	"github.com/gostrap/cli/internal/scaffold"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available project templates",
		RunE:  runTemplates,
	}
}

func runTemplates(cmd *cobra.Command, args []string) error {
	styles := output.GetStyles()

	for _, s := range scaffold.List() {
		name := s.Name
		if s.Default {
			name += " (default)"
		}
		output.Println(fmt.Sprintf("%-22s %s", styles.Noun.Render(name), s.Description))
	}

	return nil
}
