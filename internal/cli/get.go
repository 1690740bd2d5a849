package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"langkit/internal/dotpath"
	"langkit/internal/suggest"
	"langkit/lang"
)

const maxSuggestions = 3

func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at a dotted path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := dotpath.Parse(args[1]); err != nil {
				return err
			}

			obj, err := opts.load(args[0])
			if err != nil {
				return err
			}

			v, err := lang.Resolve(obj, args[1])
			if err != nil {
				return withSuggestions(err)
			}

			return opts.render(cmd.OutOrStdout(), v)
		},
	}
}

// withSuggestions appends "did you mean" hints to a missing-key PathError.
func withSuggestions(err error) error {
	var pe *lang.PathError
	if !errors.As(err, &pe) || !errors.Is(err, lang.ErrMissingKey) {
		return err
	}

	keys := suggest.Keys(pe.Segment, pe.Keys, maxSuggestions)
	if len(keys) == 0 {
		return err
	}

	prefix := dotpath.Split(pe.Path).Prefix(pe.Index).Parent()

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", append(append(dotpath.Path{}, prefix...), k).String())
	}

	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(quoted, ", "))
}
