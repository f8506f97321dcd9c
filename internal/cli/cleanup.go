// Package cli — cleanup.go implements the "lcpp cleanup" command, which
// applies deterministic Polish fixups to the translated pages.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cpp-samouczek/lcpp/internal/cleanup"
	"github.com/cpp-samouczek/lcpp/internal/model"
)

// cleanupFlags holds the flag values for the cleanup command.
type cleanupFlags struct {
	root       string // --root: translated mirror tree
	backupRoot string // --backup-root: English backup tree for keyword sync
	rules      string // --rules: extra JSONC rules file
	limit      int    // --limit: process only the first N files
}

// NewCleanupCommand creates the "cleanup" cobra command.
func NewCleanupCommand() *cobra.Command {
	flags := &cleanupFlags{}

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Apply Polish cleanup rules to translated pages",
		Long: `Apply the built-in cleanup rules to every HTML page under --root:
recurring mistranslations of C++ vocabulary, doubled words, stray
English articles before formatted terms, and escaped ">" glued onto
lesson numbers.

With --backup-root, the keyword list page is restored from the English
backup so C++ keywords are never shown translated. Extra rules can be
supplied as a JSONC file via --rules.

Examples:
  lcpp cleanup --root ./www.learncpp.com
  lcpp cleanup --root ./www.learncpp.com --backup-root ./backup-en
  lcpp cleanup --root ./www.learncpp.com --rules extra-rules.jsonc`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup(flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "Translated mirror tree (required)")
	cmd.Flags().StringVar(&flags.backupRoot, "backup-root", "", "English backup tree used for keyword list sync")
	cmd.Flags().StringVar(&flags.rules, "rules", "", "Extra cleanup rules (JSONC)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Process only the first N files")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

// runCleanup is the orchestration function for the cleanup command.
func runCleanup(flags *cleanupFlags) error {
	setupPipeline()

	rules := cleanup.DefaultRules()
	if flags.rules != "" {
		loaded, err := cleanup.LoadRules(flags.rules)
		if err != nil {
			return err // LoadRules already returns CLIError
		}
		rules = loaded
		VerboseLog("Loaded extra rules from %s", flags.rules)
	}

	stats, err := cleanup.Run(flags.root, rules, cleanup.Options{
		BackupRoot: flags.backupRoot,
		Limit:      flags.limit,
	})
	if err != nil {
		if _, ok := err.(*model.CLIError); ok {
			return err
		}
		return model.WrapCLIError(model.ExitGeneralError, "cleanup run failed", err)
	}

	printStats("cleanup", stats)
	return nil
}
