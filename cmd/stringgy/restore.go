package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeybugserial/stringgeryhtiger/internal/backup"
)

var restoreYes bool

func init() {
	cmd := newRestoreCmd()
	cmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "Do not ask before overwriting")
	rootCmd.AddCommand(cmd)
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <file> <backup>",
		Short: "Put a backup taken by replace or edit back in place",
		Long: `The restore command copies a backup over the file it was taken from,
keeping the backup's permissions and modification time. The copy is written
to a temporary file and renamed, so the file is never left half-restored.

Example:
  stringgy restore program.exe program.exe.20240501-120000.bak`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(args)
		},
	}
	return cmd
}

func runRestore(args []string) error {
	path, bak := args[0], args[1]

	if !restoreYes {
		ok, err := newPrompter().yes(paint(warnStyle, fmt.Sprintf("Overwrite %s with %s? [y/N]: ", path, bak)))
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Aborted.\n")
			return nil
		}
	}

	if err := backup.NewWriter(nil).Restore(path, bak); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"path":     path,
			"backup":   bak,
			"restored": true,
		})
	}
	printInfo("Restored %s from %s\n", path, bak)
	return nil
}
