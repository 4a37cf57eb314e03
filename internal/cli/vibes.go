package cli

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vibegrid/pkg/errors"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
	"github.com/matzehuels/vibegrid/pkg/search"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// vibesCommand creates the vibes command.
func (c *CLI) vibesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "vibes",
		Short: "List the vibe catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := vibe.All()
			if asJSON {
				return writeJSON(cmd, all)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderVibesTable(all))
			printDetail("Default: %s", vibe.DefaultID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	cmd.AddCommand(c.vibesShowCommand())
	return cmd
}

// vibesShowCommand creates the "vibes show" subcommand.
func (c *CLI) vibesShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "show <id>",
		Short:             "Show the constraints of one vibe",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeVibes,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := vibe.Lookup(args[0])
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "unknown vibe %q", args[0])
			}
			if asJSON {
				return writeJSON(cmd, v)
			}
			printVibe(v)
			if target, ok := vibe.AliasOf(args[0]); ok {
				printDetail("%s is an alias of %s", args[0], target)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

// pickCommand creates the pick command.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		out         outputFlags
		contentType string
		heading     string
		seed        float64
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a vibe interactively, then generate a quick layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(NewVibeListModel(vibe.All()), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("vibe picker: %w", err)
			}
			m, ok := final.(VibeListModel)
			if !ok || m.Selected == nil {
				printInfo("No vibe selected")
				return nil
			}

			cfg := search.QuickConfig(m.Selected.ID, layout.ContentType(contentType), layout.Content{Heading: heading})
			if cmd.Flags().Changed("seed") {
				cfg = cfg.WithSeed(seed)
			}
			return c.runGenerate(cmd.Context(), pipeline.Options{Config: cfg}, out)
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", string(layout.ContentWeb), "content type: web or business-card")
	cmd.Flags().StringVar(&heading, "heading", "", "heading text")
	cmd.Flags().Float64Var(&seed, "seed", 0, "base seed (random when unset)")
	out.register(cmd)
	return cmd
}

// writeJSON prints v as indented JSON to the command's output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
