package cli

import (
	"github.com/spf13/cobra"

	"github.com/blitzdex27/portfolio/internal/content"
)

func newContentCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the site content",
	}

	show := &cobra.Command{
		Use:       "show [site|projects|skills|experience]",
		Short:     "Print the content the site would render",
		Long:      "Load every content section, substituting built-in defaults for any that cannot be fetched, and print the result as JSON.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"site", "projects", "skills", "experience"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var section content.Section
			if len(args) == 1 {
				s, err := content.ParseSection(args[0])
				if err != nil {
					return err
				}
				section = s
			}

			c := app.contentLoader().Load(cmd.Context())
			if section == "" {
				return app.printJSON(c)
			}
			return app.printJSON(c.Get(section))
		},
	}

	cmd.AddCommand(show)
	return cmd
}
