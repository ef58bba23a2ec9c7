package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mydehq/stampname"
	"github.com/mydehq/stampname/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := stampname.LoadConfig(commonOptions()...)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		source := "built-in defaults"
		if cfg.Path != "" {
			source = cfg.Path
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n\n", ui.StyleHeader.Render("Source:"), ui.StylePath.Render(source))
		fmt.Fprintln(out, ui.HighlightYAML(string(data)))
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&flagSelfName, "self-name", "", "Skip files containing this name (default: executable name)")
	configCmd.Flags().StringSliceVarP(&flagFormats, "ext", "e", nil, "Video extensions to process (default: mp4)")
	RootCmd.AddCommand(configCmd)
}
