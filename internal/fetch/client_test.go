package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/roynafshi-stack/asus-model-api/pkg/errors"
)

func fetchTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClient_Page_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>spec page</body></html>"))
	}))
	defer srv.Close()

	c := New(DefaultConfig(), NopCache{}, fetchTestLogger())

	body, err := c.Page(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "spec page")
}

func TestClient_Page_SendsHeaders(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(DefaultConfig(), NopCache{}, fetchTestLogger())

	_, err := c.Page(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotLang, "he-IL")
}

func TestClient_Page_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(DefaultConfig(), NopCache{}, fetchTestLogger())

	_, err := c.Page(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestClient_Page_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(DefaultConfig(), NopCache{}, fetchTestLogger())

	_, err := c.Page(context.Background(), url)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestClient_Page_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 50 * time.Millisecond
	c := New(cfg, NopCache{}, fetchTestLogger())

	_, err := c.Page(context.Background(), srv.URL)
	assert.Error(t, err)
}

func setupRedisCache(t *testing.T) *RedisPageCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPageCache(client, time.Minute, fetchTestLogger())
}

func TestClient_Page_CacheHitSkipsFetch(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("<html>v1</html>"))
	}))
	defer srv.Close()

	cache := setupRedisCache(t)
	c := New(DefaultConfig(), cache, fetchTestLogger())

	first, err := c.Page(context.Background(), srv.URL)
	require.NoError(t, err)

	second, err := c.Page(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second request should be served from cache")
}

func TestRedisPageCache_MissAndSet(t *testing.T) {
	cache := setupRedisCache(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "https://example.com/a")
	assert.False(t, ok)

	cache.Set(ctx, "https://example.com/a", "<html/>")

	body, ok := cache.Get(ctx, "https://example.com/a")
	assert.True(t, ok)
	assert.Equal(t, "<html/>", body)
}
