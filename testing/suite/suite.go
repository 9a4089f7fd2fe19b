package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// envVerbose switches test logs from io.Discard to stdout.
const envVerbose = "TICTACTOE_TEST_VERBOSE"

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New returns a suite without external services.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	return ctx, &Suite{
		T:      t,
		Logger: newLogger(),
	}
}

// NewWithRedis starts a throwaway Redis container. The test is skipped when docker is unavailable.
func NewWithRedis(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, st := New(t)

	pool := dockerPool(t)
	resource := startRedis(t, pool)

	st.Storage = connectRedis(ctx, t, pool, resource)

	return ctx, st
}

func dockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker pool unavailable: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker daemon unreachable: %v", err)
	}

	pool.MaxWait = maxWaitDuration

	return pool
}

// startRedis runs redis:alpine; the container removes itself once stopped or expired.
func startRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	options := &dockertest.RunOptions{Repository: redisImage, Tag: redisTag}

	resource, err := pool.RunWithOptions(options, func(host *docker.HostConfig) {
		host.AutoRemove = true
		host.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("redis container did not start: %v", err)
	}

	// Expire only fails for an unknown container
	_ = resource.Expire(expireDuration)

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Logf("redis container was not purged: %v", purgeErr)
		}
	})

	return resource
}

// connectRedis waits for the container to accept connections and hands back an empty database.
func connectRedis(ctx context.Context, t *testing.T, pool *dockertest.Pool, resource *dockertest.Resource) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: resource.GetHostPort(redisPort)})
	t.Cleanup(func() {
		_ = client.Close()
	})

	if err := pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("redis is not reachable: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("redis database was not flushed: %v", err)
	}

	return client
}

func newLogger() *slog.Logger {
	var out io.Writer = io.Discard
	if os.Getenv(envVerbose) != "" {
		out = os.Stdout
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
