package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/3dyuval/git-resolve-conflict/internal/errors"
	"github.com/3dyuval/git-resolve-conflict/internal/git"
	"github.com/3dyuval/git-resolve-conflict/internal/resolver"
	"github.com/3dyuval/git-resolve-conflict/internal/styles"
)

// NewConflictsCmd creates the conflicts command
func NewConflictsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List conflicted files in the current repository",
		Long: `List the files with unmerged index entries in the repository enclosing
the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConflicts()
		},
	}

	return cmd
}

func runConflicts() error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.ErrFileSystem("get working directory", err)
	}

	r := resolver.New(git.NewClient())
	_, paths, err := r.ListConflicts(cwd)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println(styles.Render(&styles.Info, "no conflicted files"))
		return nil
	}

	for _, path := range paths {
		fmt.Println(styles.Render(&styles.Warning, path))
	}
	return nil
}
