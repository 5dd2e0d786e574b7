package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inkfolio/inkfolio/internal/application/reflection/usecases"
	"github.com/inkfolio/inkfolio/internal/domain/reflection"
	"github.com/inkfolio/inkfolio/internal/infrastructure/migration"
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/seeds"
	"github.com/inkfolio/inkfolio/internal/infrastructure/repository"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

func setup(t *testing.T) (reflection.Repository, *usecases.CreateReflectionUseCase) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(migration.Models()...))

	repo := repository.NewReflectionRepository(db, logger.Discard())
	return repo, usecases.NewCreateReflectionUseCase(repo, markdown.NewRenderer(), logger.Discard())
}

func TestSeed_Sample(t *testing.T) {
	ctx := context.Background()
	repo, create := setup(t)

	entries, err := seeds.Sample()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	n, err := Seed(ctx, repo, create, entries, false)
	require.NoError(t, err)
	assert.Equal(t, len(entries), n)

	all, err := repo.List(ctx, reflection.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(entries))
	for _, r := range all {
		assert.NotEmpty(t, r.ReadTime())
	}
}

func TestSeed_SkipsPopulatedStoreUnlessForced(t *testing.T) {
	ctx := context.Background()
	repo, create := setup(t)

	entries := []seeds.Reflection{{
		Title:    "Only",
		Excerpt:  "One entry",
		Content:  "Body text",
		Category: "blog",
	}}

	n, err := Seed(ctx, repo, create, entries, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = Seed(ctx, repo, create, entries, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Seed(ctx, repo, create, entries, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.List(ctx, reflection.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSeed_InvalidEntryStops(t *testing.T) {
	repo, create := setup(t)

	entries := []seeds.Reflection{
		{Title: "Good", Excerpt: "e", Content: "c", Category: "journal"},
		{Title: "Bad", Excerpt: "e", Content: "c", Category: "poetry"},
	}

	n, err := Seed(context.Background(), repo, create, entries, false)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}
