package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/3dyuval/git-resolve-conflict/internal/config"
	"github.com/3dyuval/git-resolve-conflict/internal/errors"
	"github.com/3dyuval/git-resolve-conflict/internal/git"
	"github.com/3dyuval/git-resolve-conflict/internal/merge"
	"github.com/3dyuval/git-resolve-conflict/internal/resolver"
	"github.com/3dyuval/git-resolve-conflict/internal/styles"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [strategy] [file]",
		Short: "Resolve a conflicted file with a fixed strategy",
		Long: `Resolve a single conflicted file with the given strategy.

Strategies:
  ours    keep our version of conflicting regions
  theirs  keep their version of conflicting regions
  union   keep both versions, ours first

The strategy falls back to default_strategy from ` + config.FileName + ` when
omitted. The file falls back to the repository's sole conflicted file.

Examples:
  git-resolve-conflict resolve ours package.json
  git-resolve-conflict resolve union          # sole conflicted file
  git resolve-conflict resolve theirs         # as a git subcommand`,
		Args: cobra.MaximumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []string{"ours", "theirs", "union"}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			strategyName := config.GetString("resolve.default_strategy")
			if len(args) >= 1 {
				strategyName = args[0]
			}
			file := ""
			if len(args) == 2 {
				file = args[1]
			}
			return runResolve(strategyName, file)
		},
	}

	return cmd
}

func runResolve(strategyName, file string) error {
	strategy, err := merge.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	r := resolver.New(git.NewClient())

	if file == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.ErrFileSystem("get working directory", err)
		}
		file, err = r.DefaultFile(cwd)
		if err != nil {
			return err
		}
	}

	outcome, err := r.ResolveFile(file, strategy)
	if err != nil {
		if errors.IsResolveError(err, errors.ErrCodeNotConflicted) {
			// Benign: nothing to do, working tree and index untouched.
			fmt.Println(styles.Render(&styles.Info, err.Error()))
			return nil
		}
		return err
	}

	printOutcome(outcome)
	return nil
}

func printOutcome(outcome *resolver.Outcome) {
	fmt.Println(styles.Render(&styles.Success, outcomeMessage(outcome)))
}

func outcomeMessage(outcome *resolver.Outcome) string {
	switch outcome.ConflictRegions {
	case 0:
		return fmt.Sprintf("merged %s cleanly, no conflicting regions", outcome.Path.RelativePath)
	case 1:
		return fmt.Sprintf("resolved 1 conflict with '%s' strategy", outcome.Strategy)
	default:
		return fmt.Sprintf("resolved %d conflicts with '%s' strategy", outcome.ConflictRegions, outcome.Strategy)
	}
}
