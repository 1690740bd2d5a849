package cli

import (
	"github.com/spf13/cobra"

	"langkit/lang"
)

func newMergeCommand(opts *options) *cobra.Command {
	var shallow bool

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge documents, later files winning",
		Long: `Merges the documents in argument order. By default nested objects are merged
recursively; with --shallow top-level keys of later files replace earlier ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := make([]lang.Record, 0, len(args))

			for _, file := range args {
				obj, err := opts.load(file)
				if err != nil {
					return err
				}

				sources = append(sources, obj)
			}

			var merged lang.Object
			if shallow {
				merged = lang.Mixin(nil, sources...)
			} else {
				merged = lang.DeepMixin(nil, sources...)
			}

			opts.logger.Debug("merged documents", "files", len(args), "shallow", shallow, "keys", len(merged))

			return opts.render(cmd.OutOrStdout(), merged)
		},
	}

	cmd.Flags().BoolVar(&shallow, "shallow", false, "replace nested objects instead of merging them")

	return cmd
}
