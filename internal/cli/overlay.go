package cli

import (
	"github.com/spf13/cobra"

	"langkit/lang"
)

func newOverlayCommand(opts *options) *cobra.Command {
	var own bool

	cmd := &cobra.Command{
		Use:   "overlay BASE OVERRIDE",
		Short: "Layer OVERRIDE over BASE with delegation",
		Long: `Builds a deep delegate of BASE carrying the keys of OVERRIDE. Nested objects
present in both fall back to BASE for keys OVERRIDE does not set. The result is
printed flattened, or only the top-level keys OVERRIDE sets with --own.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := opts.load(args[0])
			if err != nil {
				return err
			}

			override, err := opts.load(args[1])
			if err != nil {
				return err
			}

			d := lang.DeepDelegate(base, override)
			if own {
				return opts.render(cmd.OutOrStdout(), d.Own())
			}

			return opts.render(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().BoolVar(&own, "own", false, "print only the keys set by OVERRIDE")

	return cmd
}
