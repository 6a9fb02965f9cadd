package command

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goforj/pagecache"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PAGECACHE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	app := InitApp(context.Background(), &out)
	err := app.Run(context.Background(), append([]string{"pagecache"}, args...))
	return out.String(), err
}

func TestGetCommandServesRepeatsFromCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "hello")
	}))
	defer srv.Close()

	out, err := runApp(t, "--driver", "memory", "get", srv.URL, srv.URL, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "hello\nhello\nhello\n", out)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGetCommandRequiresURL(t *testing.T) {
	_, err := runApp(t, "get")
	assert.Error(t, err)
}

func TestGetCommandPropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := runApp(t, "get", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), url)
}

func TestCountCommandOnFreshStore(t *testing.T) {
	out, err := runApp(t, "count", "http://a.test")
	require.NoError(t, err)
	assert.Equal(t, "0\thttp://a.test\n", out)
}

func TestStoreCommandPrintsKeysAndReplay(t *testing.T) {
	out, err := runApp(t, "store", "foo", "42")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Len(t, lines[0], 36)
	assert.Len(t, lines[1], 36)
	assert.Equal(t, "DataCache.Store was called 2 times:", lines[2])
	assert.Equal(t, `DataCache.Store("foo") -> `+lines[0], lines[3])
	assert.Equal(t, "DataCache.Store(42) -> "+lines[1], lines[4])
}

func TestReplayCommandDefaultsToStoreMethod(t *testing.T) {
	out, err := runApp(t, "--driver", "null", "replay")
	require.NoError(t, err)
	assert.Equal(t, pagecache.StoreMethod+" was called 0 times:\n", out)
}

func TestUnknownDriverIsRejected(t *testing.T) {
	_, err := runApp(t, "--driver", "etcd", "count", "http://a.test")
	assert.Error(t, err)
}

func TestDriverFromEnv(t *testing.T) {
	t.Setenv("PAGECACHE_DRIVER", "null")
	var out bytes.Buffer
	app := InitApp(context.Background(), &out)
	require.NoError(t, app.Run(context.Background(), []string{"pagecache", "count", "http://a.test"}))
	assert.Equal(t, "0\thttp://a.test\n", out.String())
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, 3.5, parseValue("3.5"))
	assert.Equal(t, "foo", parseValue("foo"))
}

func TestDriverValidator(t *testing.T) {
	assert.NoError(t, DriverValidator("memory"))
	assert.NoError(t, DriverValidator("redis"))
	assert.NoError(t, DriverValidator("null"))
	assert.Error(t, DriverValidator("file"))
}
