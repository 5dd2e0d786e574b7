package admin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/inkfolio/inkfolio/internal/application/admin/usecases"
	"github.com/inkfolio/inkfolio/internal/infrastructure/auth"
	"github.com/inkfolio/inkfolio/internal/infrastructure/repository"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/bootstrap"
	"github.com/inkfolio/inkfolio/internal/shared/constants"
)

var (
	env  string
	cost int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator utilities",
	}

	cmd.AddCommand(
		newHashPasswordCommand(),
		newSweepSessionsCommand(),
	)

	return cmd
}

func newHashPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for admin.password_hash",
		Long: `Read a password from stdin and print its bcrypt hash. When stdin is a
terminal the password is prompted for without echo.`,
		RunE: runHashPassword,
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")

	return cmd
}

func newSweepSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep-sessions",
		Short: "Delete expired admin sessions",
		RunE:  runSweepSessions,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	hash, err := hashPassword(password, cost)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func hashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return auth.NewBcryptPasswordHasher(cost).Hash(password)
}

// readPassword prompts without echo on a terminal and otherwise reads the
// first line of in.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runSweepSessions(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Open(env)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Log.Named("auth")
	sweep := usecases.NewSweepSessionsUseCase(repository.NewSessionRepository(app.DB), log)

	removed, err := sweep.Execute(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired sessions\n", removed)
	return nil
}
