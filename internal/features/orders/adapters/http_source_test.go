package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recovery-dashboard/internal/core/httpclient"
	"recovery-dashboard/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPayloadSource_Fetch(t *testing.T) {
	logger.Init("development", "error")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders.tsv":
			w.Write([]byte(tsvExport))
		case "/big.csv":
			w.Write([]byte(strings.Repeat("x", 64)))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	src := NewHTTPPayloadSource(time.Second, 32, true)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		src := NewHTTPPayloadSource(time.Second, 1<<20, true)
		data, err := src.Fetch(ctx, ts.URL+"/orders.tsv")
		require.NoError(t, err)
		assert.Equal(t, tsvExport, string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := src.Fetch(ctx, ts.URL+"/missing.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status: 404")
	})

	t.Run("TooLarge", func(t *testing.T) {
		_, err := src.Fetch(ctx, ts.URL+"/big.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds 32 bytes")
	})

	t.Run("InvalidURL", func(t *testing.T) {
		for _, loc := range []string{"", "ftp://example.com/a.csv", "not a url", "/relative.csv"} {
			_, err := src.Fetch(ctx, loc)
			require.Error(t, err, loc)
			assert.Contains(t, err.Error(), "invalid payload URL")
		}
	})
}

func TestHTTPPayloadSource_RefusesInternalHosts(t *testing.T) {
	logger.Init("development", "error")

	hit := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Write([]byte("internal-secret"))
	}))
	defer ts.Close()

	src := NewHTTPPayloadSource(time.Second, 1<<20, false)

	data, err := src.Fetch(context.Background(), ts.URL+"/admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, httpclient.ErrForbiddenAddress)
	assert.Nil(t, data)
	assert.False(t, hit)

	_, err = src.Fetch(context.Background(), "http://169.254.169.254/latest/meta-data/")
	assert.ErrorIs(t, err, httpclient.ErrForbiddenAddress)
}
