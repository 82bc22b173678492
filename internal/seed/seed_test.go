package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/seed"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	seeder     *seed.Seeder
	svc        service.TaskService
	categories *sqlite.CategoryStore
}

func newHarness(t *testing.T, tasks service.TaskService) *harness {
	t.Helper()

	db := testdb.NewSQLiteDB(t)
	log, _ := logger.NewBufferLogger()

	categories := sqlite.NewCategoryStore(db, log)
	catalog, err := service.NewCategoryCatalog(categories, log)
	require.NoError(t, err)

	if tasks == nil {
		tasks, err = service.NewTaskService(sqlite.NewTaskStore(db, log), nil, log)
		require.NoError(t, err)
	}

	seeder, err := seed.NewSeeder(db, categories, tasks, service.NewTaskCodec(catalog), log)
	require.NoError(t, err)

	return &harness{seeder: seeder, svc: tasks, categories: categories}
}

func TestSampleTasks(t *testing.T) {
	payloads, err := seed.SampleTasks()
	require.NoError(t, err)
	require.Len(t, payloads, 6)

	for _, p := range payloads {
		name, ok := p.CategoryName.Get()
		require.True(t, ok)
		assert.Contains(t, seed.DefaultCategories, name)
	}
}

func TestSeeder_Run(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	require.NoError(t, h.seeder.Run(ctx))

	categories, err := h.categories.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, seed.DefaultCategories, names)

	tasks, err := h.svc.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 6)
	assert.Equal(t, "Finish project report", tasks[0].Title)

	gym, err := h.svc.GetByTitle(ctx, "Gym session")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityLow, gym.Priority)
	assert.Equal(t, "Health", gym.Category.Name)
	assert.Equal(t, "2025-07-26", gym.DueDate.Format(domain.DateLayout))
	assert.Equal(t, 7, gym.ReminderAt.Hour())
	assert.Equal(t, 30, gym.ReminderAt.Minute())

	callMom, err := h.svc.GetByTitle(ctx, "Call mom")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, callMom.Status)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	require.NoError(t, h.seeder.Run(ctx))
	require.NoError(t, h.seeder.Run(ctx))

	categories, err := h.categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(seed.DefaultCategories))

	tasks, err := h.svc.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 6)
}

func TestSeeder_RunKeepsExistingCategories(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	require.NoError(t, h.categories.Create(ctx, &domain.Category{Name: "Health"}))
	require.NoError(t, h.seeder.Run(ctx))

	categories, err := h.categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(seed.DefaultCategories))
	assert.Equal(t, "Health", categories[0].Name)
}

func TestSeeder_RunPropagatesServiceFailure(t *testing.T) {
	boom := errors.New("store offline")
	tasks := &mocks.MockTaskService{
		GetByTitleFn: func(context.Context, string) (*domain.Task, error) {
			return nil, boom
		},
	}
	h := newHarness(t, tasks)

	err := h.seeder.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewSeeder_RequiresDependencies(t *testing.T) {
	_, err := seed.NewSeeder(nil, nil, nil, nil, nil)
	assert.Error(t, err)
}
