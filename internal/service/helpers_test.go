package service_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// scriptedClock returns the queued instants in order and then repeats the last.
type scriptedClock struct {
	mu    sync.Mutex
	times []time.Time
}

func newScriptedClock(times ...time.Time) *scriptedClock {
	return &scriptedClock{times: times}
}

func (c *scriptedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return now
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires a service, codec and catalog over a fresh SQLite database
// that holds the Work and Personal categories.
type fixture struct {
	db      *sql.DB
	svc     service.TaskService
	codec   *service.TaskCodec
	catalog *service.CategoryCatalog
}

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()

	db := testdb.NewSQLiteDB(t)
	log := quietLogger()

	categories := sqlite.NewCategoryStore(db, log)
	for _, name := range []string{"Work", "Personal"} {
		require.NoError(t, categories.Create(context.Background(), &domain.Category{Name: name}))
	}

	catalog, err := service.NewCategoryCatalog(categories, log)
	require.NoError(t, err)

	svc, err := service.NewTaskService(sqlite.NewTaskStore(db, log), nil, log, opts...)
	require.NoError(t, err)

	return &fixture{
		db:      db,
		svc:     svc,
		codec:   service.NewTaskCodec(catalog),
		catalog: catalog,
	}
}

func (f *fixture) category(t *testing.T, name string) domain.Category {
	t.Helper()
	c, err := f.catalog.Resolve(context.Background(), name)
	require.NoError(t, err)
	return *c
}

func (f *fixture) create(t *testing.T, title string) *domain.Task {
	t.Helper()
	created, err := f.svc.Create(context.Background(), &domain.Task{
		Title:    title,
		Priority: domain.PriorityMedium,
		Category: f.category(t, "Work"),
	})
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
