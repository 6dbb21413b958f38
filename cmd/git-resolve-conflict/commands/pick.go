package commands

import (
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/3dyuval/git-resolve-conflict/internal/merge"
	"github.com/3dyuval/git-resolve-conflict/internal/styles"
)

// NewPickCmd creates the pick command
func NewPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [file]",
		Short: "Pick a resolution strategy interactively",
		Long: `Prompt for a resolution strategy, then resolve the file with it.

Examples:
  git-resolve-conflict pick package.json
  git-resolve-conflict pick             # sole conflicted file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return runPick(file)
		},
	}

	return cmd
}

func runPick(file string) error {
	strategyName, err := promptStrategy()
	if err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			fmt.Println(styles.Render(&styles.Dimmed, "aborted, nothing resolved"))
			return nil
		}
		return err
	}

	return runResolve(strategyName, file)
}

// promptStrategy shows the three strategy labels and returns the chosen name.
func promptStrategy() (string, error) {
	var chosen string

	options := make([]huh.Option[string], 0, 3)
	for _, strategy := range merge.Strategies() {
		label := fmt.Sprintf("%-6s  %s", strategy, strategy.Description())
		options = append(options, huh.NewOption(label, strategy.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Resolve conflicting regions with").
				Options(options...).
				Value(&chosen),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return chosen, nil
}
