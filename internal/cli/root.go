// Package cli implements the langkit command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"langkit/internal/logging"
	"langkit/lang"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	formatYAML = "yaml"
	formatDump = "dump"
)

// options holds the persistent flags shared by every command.
type options struct {
	format    string
	logLevel  string
	logFormat string

	logger logging.Logger
}

// NewRootCommand builds the langkit command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{logger: logging.NoOpLogger{}}

	root := &cobra.Command{
		Use:   "langkit",
		Short: "Inspect and compose YAML documents with dotted paths",
		Long: `langkit reads YAML documents as plain objects and applies the lang helpers
to them: dotted-path get and set, deep or shallow merges, and delegation
overlays where one document falls back to another.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	root.Version = Version
	root.SetVersionTemplate("langkit version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.format, "format", formatYAML, "output format: yaml or dump")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newGetCommand(opts),
		newSetCommand(opts),
		newMergeCommand(opts),
		newOverlayCommand(opts),
		newKeysCommand(opts),
	)

	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *options) setup(stderr io.Writer) error {
	if o.format != formatYAML && o.format != formatDump {
		return fmt.Errorf("unknown output format %q", o.format)
	}

	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}

	o.logger = logging.New(logging.Config{Level: level, Format: o.logFormat, Output: stderr})

	return nil
}

func (o *options) load(path string) (lang.Object, error) {
	obj, err := lang.LoadFile(path)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("loaded document", "path", path, "keys", len(obj))

	return obj, nil
}

func (o *options) render(w io.Writer, v any) error {
	if o.format == formatDump {
		_, err := io.WriteString(w, lang.Dump(v))
		return err
	}

	data, err := lang.MarshalValue(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	_, err = w.Write(data)

	return err
}
