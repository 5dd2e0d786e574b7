package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkfolio/inkfolio/internal/interfaces/cli/admin"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/migrate"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/seed"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/server"
	"github.com/inkfolio/inkfolio/internal/shared/version"
)

// @title						Inkfolio API
// @version					1.0
// @description				Portfolio and blog backend with a contact inbox and a single admin.
// @BasePath					/
// @securityDefinitions.apikey	SessionCookie
// @in							cookie
// @name						session_id
func main() {
	rootCmd := &cobra.Command{
		Use:   "inkfolio",
		Short: "Inkfolio - portfolio and blog backend",
		Long:  `Inkfolio serves reflections, accepts contact messages and manages the admin session, with migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		admin.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
