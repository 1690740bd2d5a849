package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"langkit/internal/dotpath"
	"langkit/lang"
)

func newKeysCommand(opts *options) *cobra.Command {
	var (
		base      string
		inherited bool
	)

	cmd := &cobra.Command{
		Use:   "keys FILE [PATH]",
		Short: "List the keys of the object at PATH",
		Long: `Lists the keys of the object at PATH, or of the document itself.
With --base the document is first layered over BASE as in overlay; --inherited
then also lists the keys that fall back to BASE.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := opts.load(args[0])
			if err != nil {
				return err
			}

			var root lang.Record = obj

			if base != "" {
				b, err := opts.load(base)
				if err != nil {
					return err
				}

				root = lang.DeepDelegate(b, obj)
			}

			var target any = root

			if len(args) == 2 {
				if _, err := dotpath.Parse(args[1]); err != nil {
					return err
				}

				target, err = lang.Resolve(root, args[1])
				if err != nil {
					return withSuggestions(err)
				}
			}

			rec, ok := lang.AsRecord(target)
			if !ok {
				return fmt.Errorf("value is %s: %w", lang.KindOf(target), lang.ErrNotMapping)
			}

			keys := rec.Keys()
			if inherited {
				keys = lang.AllKeys(rec)
			}

			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "layer FILE over this document first")
	cmd.Flags().BoolVar(&inherited, "inherited", false, "include keys inherited from --base")

	return cmd
}
