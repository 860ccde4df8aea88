package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blitzdex27/portfolio/internal/adminauth"
	"github.com/blitzdex27/portfolio/internal/common"
	"github.com/blitzdex27/portfolio/internal/filex"
)

// ErrAccessDenied is returned by "auth verify" when the password does not
// match.
var ErrAccessDenied = errors.New("access denied")

var errPasswordMismatch = errors.New("passwords do not match")

func newAuthCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the admin password record",
	}
	cmd.AddCommand(newAuthCreateCommand(app), newAuthVerifyCommand(app), newAuthShowCommand(app))
	return cmd
}

func newAuthCreateCommand(app *App) *cobra.Command {
	var (
		outPath   string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new admin credential record",
		Long: `Create a new admin credential record with a fresh random salt.

The password is read from a hidden prompt (asked twice) or, with
--password-stdin, from the first line of standard input. The record is
written to --out, or printed when --out is empty. Publish it as
data/admin-auth.json.

Examples:
  portfolio auth create --out public/data/admin-auth.json
  echo "$ADMIN_PASSWORD" | portfolio auth create --password-stdin --iterations 600000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := app.password(fromStdin, "Enter new admin password: ")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			if !fromStdin {
				again, err := app.password(false, "Repeat password: ")
				if err != nil {
					return err
				}
				defer common.WipeByteArray(again)
				if !bytes.Equal(pw, again) {
					return errPasswordMismatch
				}
			}

			rec, err := adminauth.CreateAuthConfig(string(pw), app.config.Iterations)
			if err != nil {
				return err
			}

			if outPath == "" {
				return app.printJSON(rec)
			}

			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			if err := filex.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
				return err
			}
			app.logger.Info(cmd.Context(), "admin auth config written", "path", outPath, "iterations", rec.Iterations)
			fmt.Fprintf(app.out, "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "file to write the record to (default: stdout)")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newAuthVerifyCommand(app *App) *cobra.Command {
	var (
		source    string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against the published record",
		Long: `Load the admin credential record the way the admin page does (falling
back to the built-in default when it cannot be fetched) and check a password
against it. Exits non-zero when access is denied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.provider(source)
			if err != nil {
				return err
			}
			rec := p.Load(cmd.Context())

			pw, err := app.password(fromStdin, "Admin password: ")
			if err != nil && !errors.Is(err, common.ErrEmptyPassword) {
				return err
			}
			defer common.WipeByteArray(pw)

			if !adminauth.Verify(string(pw), &rec) {
				fmt.Fprintln(app.out, "access denied")
				return ErrAccessDenied
			}
			fmt.Fprintln(app.out, "access granted")
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "record URL or path (default: base-url + auth-path)")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newAuthShowCommand(app *App) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective admin credential record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.provider(source)
			if err != nil {
				return err
			}
			return app.printJSON(p.Load(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "record URL or path (default: base-url + auth-path)")
	return cmd
}
