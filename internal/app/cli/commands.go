package cli

import (
	"github.com/spf13/cobra"

	"artspace/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandView CommandType = iota
	CommandList
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Force  bool
	DryRun bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
	list    bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	if args == nil {
		args = []string{}
	}

	result := &Options{
		Type: CommandView,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildViewCommand(result),
		buildListCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.list {
		result.Type = CommandList
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: config.AppDescription,
		Long: `artspace shows a fixed collection of artworks one at a time.
Browse with the Previous and Next buttons, the arrow keys, or by
dragging the artwork sideways. Hold a button to see what it does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
		},
	}

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "List the collection")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildViewCommand creates the view subcommand
func buildViewCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the gallery",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
		},
	}
}

// buildListCommand creates the list subcommand
func buildListCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the collection",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandList
		},
	}
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate artspace.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing artspace.yaml")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
