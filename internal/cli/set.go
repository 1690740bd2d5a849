package cli

import (
	"github.com/spf13/cobra"

	"langkit/internal/dotpath"
	"langkit/lang"
)

func newSetCommand(opts *options) *cobra.Command {
	var (
		output  string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Set the value at a dotted path",
		Long: `Sets VALUE at PATH, creating intermediate objects as needed.
VALUE is parsed as YAML, so 42 is a number, true a boolean and '{a: 1}' an object.
The result is printed unless -o or -i is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]

			if _, err := dotpath.Parse(path); err != nil {
				return err
			}

			value, err := lang.ParseValue(args[2])
			if err != nil {
				return err
			}

			obj, err := opts.load(file)
			if err != nil {
				return err
			}

			lang.SetProperty(obj, path, value)

			if inPlace {
				output = file
			}

			if output == "" {
				return opts.render(cmd.OutOrStdout(), obj)
			}

			if err := lang.WriteFile(obj, output); err != nil {
				return err
			}

			opts.logger.Info("wrote document", "path", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this file")
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "rewrite FILE")
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")

	return cmd
}
