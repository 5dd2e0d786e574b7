package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkfolio/inkfolio/internal/application/reflection/usecases"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/seeds"
	"github.com/inkfolio/inkfolio/internal/infrastructure/repository"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/bootstrap"
	"github.com/inkfolio/inkfolio/internal/shared/constants"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

var (
	env   string
	file  string
	force bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample reflections",
		Long: `Insert reflections from a YAML seed file, or the bundled sample set when
no file is given. Seeding is skipped when reflections already exist unless
--force is passed.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a YAML seed file (default: bundled sample)")
	cmd.Flags().BoolVar(&force, "force", false, "Seed even when reflections already exist")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	entries, err := seeds.Load(file)
	if err != nil {
		return err
	}

	app, err := bootstrap.Open(env)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Log.Named("seed")
	repo := repository.NewReflectionRepository(app.DB, log)
	create := usecases.NewCreateReflectionUseCase(repo, markdown.NewRenderer(), log)

	inserted, err := Seed(cmd.Context(), repo, create, entries, force)
	if err != nil {
		return err
	}
	if inserted == 0 && len(entries) > 0 {
		log.Infow("reflections already present, skipping seed")
		return nil
	}

	log.Infow("seed completed", "inserted", inserted)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d reflections\n", inserted)
	return nil
}

// Seed inserts entries through the create use case so seeded rows get the
// same validation and derived fields as API writes. It does nothing when the
// store already holds reflections, unless force is set.
func Seed(
	ctx context.Context,
	repo reflection.Repository,
	create usecases.CreateReflectionExecutor,
	entries []seeds.Reflection,
	force bool,
) (int, error) {
	existing, err := repo.List(ctx, reflection.ListFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to check existing reflections: %w", err)
	}
	if len(existing) > 0 && !force {
		return 0, nil
	}

	inserted := 0
	for i, e := range entries {
		published := e.IsPublished()
		createCmd := usecases.CreateReflectionCommand{
			Title:     e.Title,
			Excerpt:   e.Excerpt,
			Content:   e.Content,
			Category:  e.Category,
			Tags:      e.Tags,
			Published: &published,
		}
		if !e.Date.IsZero() {
			date := e.Date
			createCmd.Date = &date
		}

		if _, err := create.Execute(ctx, createCmd); err != nil {
			return inserted, fmt.Errorf("seed entry %d (%q): %w", i, e.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
