package testutils

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/api/handlers"
	"github.com/linskybing/design-review/internal/api/routes"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/internal/repository/memory"
	"github.com/linskybing/design-review/internal/seed"
	"github.com/linskybing/design-review/internal/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// SeededRepos returns a memory store loaded with the demo dataset.
func SeededRepos(t *testing.T) *repository.Repos {
	t.Helper()
	repos := memory.NewRepositories()
	f, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Apply(repos, f)
	require.NoError(t, err)
	return repos
}

// SetupRouter wires the full engine over a seeded memory store and a
// local blob store in a temp dir.
func SetupRouter(t *testing.T, opts routes.Options, ping handlers.Pinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	svc := application.New(SeededRepos(t), blobs, zap.NewNop())
	h := handlers.New(svc, handlers.Options{
		AppName:       "Design Review System API",
		AppVersion:    "test",
		StoreDriver:   "memory",
		PublicBaseURL: "http://review.test",
		Ping:          ping,
	})
	return routes.NewEngine(h, zap.NewNop(), opts)
}
