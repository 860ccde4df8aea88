package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/blitzdex27/portfolio/internal/config"
)

// NewRootCommand builds the command tree reading from in and writing results
// to out and prompts, logs and errors to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	app := newApp(in, out, errOut)

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Manage portfolio site content and the admin password gate",
		Long: `Manage the data files behind the portfolio site.

The admin page is gated by data/admin-auth.json, a PBKDF2-SHA-256 record.
Use "auth create" to provision a new record and publish the output file;
sites without a published record fall back to the built-in default.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString(config.FlagConfig)
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(path, cmd.Flags())
			if err != nil {
				return err
			}
			app.configure(cfg)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newAuthCommand(app), newContentCommand(app))
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := NewRootCommand(in, out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
