package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/vibegrid/pkg/io"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
)

// scoreCommand creates the score command.
func (c *CLI) scoreCommand() *cobra.Command {
	var (
		background string
		write      bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "score <layout.json>",
		Short: "Re-score a generated layout",
		Long: `Evaluate a layout file against the design principles of its vibe.

Contrast is measured against --background, so the same layout can be
checked on several backgrounds. --write stores the new score in the file.`,
		Example: `  vibegrid score layout.json --background "#101010"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			l, err := pkgio.ReadLayoutFile(path)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Score(cmd.Context(), pipeline.ScoreRequest{Layout: l, Background: background})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, res.Layout.Score)
			}
			printScoreReport(res.Layout.Score)

			if write {
				if err := pkgio.WriteLayoutFile(res.Layout, path); err != nil {
					return err
				}
				printSuccess("Updated score in %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&background, "background", pipeline.DefaultBackground, "background color for contrast")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the new score back to the file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the score as JSON")
	return cmd
}
