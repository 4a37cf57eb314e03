package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/vibegrid/pkg/io"
	"github.com/matzehuels/vibegrid/pkg/layout"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
	"github.com/matzehuels/vibegrid/pkg/search"
	"github.com/matzehuels/vibegrid/pkg/vibe"
)

// defaultOutput is where layouts are written unless --output says otherwise.
const defaultOutput = "layout.json"

// =============================================================================
// Flags
// =============================================================================

// outputFlags are shared by every command that produces a layout.
type outputFlags struct {
	output  string
	noCache bool
	refresh bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", defaultOutput, "output file (- for stdout)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "regenerate even if the layout is cached")
}

// requestFlags describe a generation request on the command line. Values
// given explicitly override a --config file; without a file every flag
// applies, defaults included.
type requestFlags struct {
	outputFlags

	configFile  string
	vibeID      string
	contentType string
	width       float64
	height      float64
	heading     string
	subheading  string
	body        string
	contacts    []string
	seed        float64
	colors      layout.Colors

	maxIterations int
	minScore      int
	dpi           float64
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "request file (.toml or .json, - for JSON on stdin)")
	fs.StringVar(&f.vibeID, "vibe", vibe.DefaultID, "vibe id (see 'vibegrid vibes')")
	fs.StringVarP(&f.contentType, "type", "t", string(layout.ContentWeb), "content type: web or business-card")
	fs.Float64Var(&f.width, "width", search.DefaultCanvas.Width, "canvas width in px")
	fs.Float64Var(&f.height, "height", search.DefaultCanvas.Height, "canvas height in px")
	fs.StringVar(&f.heading, "heading", "", "heading text")
	fs.StringVar(&f.subheading, "subheading", "", "subheading text")
	fs.StringVar(&f.body, "body", "", "body text")
	fs.StringSliceVar(&f.contacts, "contact", nil, "contact line (repeatable)")
	fs.Float64Var(&f.seed, "seed", 0, "base seed (random when unset)")
	fs.StringVar(&f.colors.Primary, "primary", layout.DefaultColors.Primary, "primary color")
	fs.StringVar(&f.colors.Secondary, "secondary", layout.DefaultColors.Secondary, "secondary color")
	fs.StringVar(&f.colors.Accent, "accent", layout.DefaultColors.Accent, "accent color")
	fs.StringVar(&f.colors.Background, "background", layout.DefaultColors.Background, "background color")
	fs.StringVar(&f.colors.Text, "text", layout.DefaultColors.Text, "text color")
	fs.IntVar(&f.maxIterations, "max-iterations", search.DefaultMaxIterations, "candidates tried per search")
	fs.IntVar(&f.minScore, "min-score", search.DefaultMinScore, "score that ends a search early")
	fs.Float64Var(&f.dpi, "dpi", 0, "business card resolution (default 300)")
	f.outputFlags.register(cmd)
}

// request builds the request from the --config file and the flags.
func (f *requestFlags) request(cmd *cobra.Command) (pkgio.Request, error) {
	var req pkgio.Request
	fromFile := f.configFile != ""
	if fromFile {
		var err error
		if req, err = pkgio.ReadRequestFile(f.configFile); err != nil {
			return req, err
		}
	}
	set := func(name string) bool {
		return !fromFile || cmd.Flags().Changed(name)
	}

	cfg := &req.Config
	if set("vibe") {
		cfg.VibeID = f.vibeID
	}
	if set("type") {
		cfg.ContentType = layout.ContentType(f.contentType)
	}
	if set("width") {
		cfg.CanvasSize.Width = f.width
	}
	if set("height") {
		cfg.CanvasSize.Height = f.height
	}
	if set("heading") && f.heading != "" {
		cfg.Content.Heading = f.heading
	}
	if set("subheading") && f.subheading != "" {
		cfg.Content.Subheading = f.subheading
	}
	if set("body") && f.body != "" {
		cfg.Content.Body = f.body
	}
	if len(f.contacts) > 0 {
		cfg.Content.ContactInfo = f.contacts
	}
	if set("primary") {
		cfg.Colors.Primary = f.colors.Primary
	}
	if set("secondary") {
		cfg.Colors.Secondary = f.colors.Secondary
	}
	if set("accent") {
		cfg.Colors.Accent = f.colors.Accent
	}
	if set("background") {
		cfg.Colors.Background = f.colors.Background
	}
	if set("text") {
		cfg.Colors.Text = f.colors.Text
	}

	// Seed and search tuning only apply when given, so the defaults stay
	// in one place.
	if cmd.Flags().Changed("seed") {
		*cfg = cfg.WithSeed(f.seed)
	}
	if cmd.Flags().Changed("max-iterations") {
		req.Options.MaxIterations = &f.maxIterations
	}
	if cmd.Flags().Changed("min-score") {
		req.Options.MinScore = &f.minScore
	}
	if cmd.Flags().Changed("dpi") {
		req.Options.DPI = &f.dpi
	}
	return req, nil
}

// =============================================================================
// Commands
// =============================================================================

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one scored layout",
		Long: `Generate one scored layout for a vibe.

The request comes from flags, a request file (--config), or both; flags
given explicitly override the file. With --seed the result is reproducible
and cached.`,
		Example: `  vibegrid generate --vibe minimal --heading "Simplicity" --seed 42
  vibegrid generate -c request.toml -o out.json
  vibegrid generate -c request.toml --vibe bold -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			opts := req.PipelineOptions()
			opts.Count = 1
			return c.runGenerate(cmd.Context(), opts, flags.outputFlags)
		},
	}

	flags.register(cmd)
	return cmd
}

// bestCommand creates the best command.
func (c *CLI) bestCommand() *cobra.Command {
	var (
		flags requestFlags
		count int
	)

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Generate the best layout of N independent searches",
		Long: `Run N independent searches with spread-out seeds and keep the highest
scoring layout. Ties go to the layout with fewer elements.`,
		Example: `  vibegrid best --vibe corporate --heading "Quarterly Review" -n 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			opts := req.PipelineOptions()
			if cmd.Flags().Changed("count") || opts.Count == 0 {
				opts.Count = count
			}
			return c.runGenerate(cmd.Context(), opts, flags.outputFlags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 10, fmt.Sprintf("number of searches (max %d)", pipeline.DefaultMaxCount))
	return cmd
}

// quickCommand creates the quick command.
func (c *CLI) quickCommand() *cobra.Command {
	var (
		out         outputFlags
		contentType string
		content     layout.Content
		seed        float64
	)

	cmd := &cobra.Command{
		Use:   "quick [vibe]",
		Short: "Generate a layout with default palette, canvas and copy",
		Long: `Generate a layout for a vibe, filling in the default palette, a 1200x800
canvas and placeholder copy for anything not given.`,
		Example:           `  vibegrid quick playful --heading "Summer Fest"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeVibes,
		RunE: func(cmd *cobra.Command, args []string) error {
			vibeID := vibe.DefaultID
			if len(args) == 1 {
				vibeID = args[0]
			}
			cfg := search.QuickConfig(vibeID, layout.ContentType(contentType), content)
			if cmd.Flags().Changed("seed") {
				cfg = cfg.WithSeed(seed)
			}
			return c.runGenerate(cmd.Context(), pipeline.Options{Config: cfg}, out)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&contentType, "type", "t", string(layout.ContentWeb), "content type: web or business-card")
	fs.StringVar(&content.Heading, "heading", "", "heading text")
	fs.StringVar(&content.Subheading, "subheading", "", "subheading text")
	fs.StringVar(&content.Body, "body", "", "body text")
	fs.StringSliceVar(&content.ContactInfo, "contact", nil, "contact line (repeatable)")
	fs.Float64Var(&seed, "seed", 0, "base seed (random when unset)")
	out.register(cmd)
	return cmd
}

// cardCommand creates the card command.
func (c *CLI) cardCommand() *cobra.Command {
	var (
		out      outputFlags
		vibeID   string
		name     string
		title    string
		contacts []string
		dpi      float64
		seed     float64
		colors   layout.Colors
	)

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Generate a business card layout",
		Long: `Generate a 3.5in x 2in business card. Sizes are computed in millimetres
and points and converted to pixels at --dpi.`,
		Example: `  vibegrid card --name "Jane Doe" --title "Designer" --contact jane@example.com --dpi 600`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := layout.Config{
				ContentType: layout.ContentBusinessCard,
				VibeID:      vibeID,
				Colors:      colors,
				Content:     layout.Content{Heading: name, Subheading: title, ContactInfo: contacts},
			}
			if cmd.Flags().Changed("seed") {
				cfg = cfg.WithSeed(seed)
			}
			opts := pipeline.Options{Config: cfg, Search: search.Params{DPI: &dpi}}
			return c.runGenerate(cmd.Context(), opts, out)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&vibeID, "vibe", vibe.DefaultID, "vibe id")
	fs.StringVar(&name, "name", "", "name line")
	fs.StringVar(&title, "title", "", "title line")
	fs.StringSliceVar(&contacts, "contact", nil, "contact line (repeatable)")
	fs.Float64Var(&dpi, "dpi", 300, "print resolution")
	fs.Float64Var(&seed, "seed", 0, "seed (random when unset)")
	fs.StringVar(&colors.Primary, "primary", layout.DefaultColors.Primary, "primary color")
	fs.StringVar(&colors.Secondary, "secondary", layout.DefaultColors.Secondary, "secondary color")
	fs.StringVar(&colors.Accent, "accent", layout.DefaultColors.Accent, "accent color")
	fs.StringVar(&colors.Background, "background", layout.DefaultColors.Background, "background color")
	fs.StringVar(&colors.Text, "text", layout.DefaultColors.Text, "text color")
	out.register(cmd)
	return cmd
}

// =============================================================================
// Shared Execution
// =============================================================================

// runGenerate runs opts through a pipeline runner and writes the layout.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, out outputFlags) error {
	runner, err := c.newRunner(out.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts.Refresh = out.refresh
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	toStdout := out.output == "-"
	var spinner *Spinner
	if !toStdout {
		msg := "Generating layout..."
		if opts.Mode() == pipeline.ModeBest {
			msg = fmt.Sprintf("Searching %d seeds...", opts.Count)
		}
		spinner = newSpinnerWithContext(ctx, msg)
		spinner.Start()
	}

	res, err := runner.Generate(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if err := pkgio.WriteLayoutFile(res.Layout, out.output); err != nil {
		return err
	}
	if toStdout {
		return nil
	}

	printLayoutSummary(res)
	printFile(out.output)
	printNewline()
	printNextStep("Re-score against another background", "vibegrid score "+out.output+" --background <color>")
	return nil
}

// completeVibes completes vibe ids for positional arguments.
func completeVibes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return vibe.IDs(), cobra.ShellCompDirectiveNoFileComp
}
