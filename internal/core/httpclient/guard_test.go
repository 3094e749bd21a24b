package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectNonPublic(t *testing.T) {
	tests := []struct {
		address string
		allowed bool
	}{
		{"127.0.0.1:80", false},
		{"[::1]:443", false},
		{"10.1.2.3:80", false},
		{"172.16.0.5:80", false},
		{"192.168.1.10:8080", false},
		{"169.254.169.254:80", false},
		{"[fe80::1]:80", false},
		{"0.0.0.0:80", false},
		{"[::]:80", false},
		{"100.64.0.1:80", false},
		{"[::ffff:127.0.0.1]:80", false},
		{"224.0.0.1:80", false},
		{"not-an-address", false},
		{"93.184.216.34:443", true},
		{"[2606:4700::1111]:443", true},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			err := rejectNonPublic("tcp", tt.address, nil)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrForbiddenAddress)
		})
	}
}

// TestPublicOnly_RefusesLoopback verifies that a guarded client never reaches a local server.
func TestPublicOnly_RefusesLoopback(t *testing.T) {
	hit := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Write([]byte("internal-secret"))
	}))
	defer ts.Close()

	observe(t)

	_, err := NewClient("payload-source", time.Second, PublicOnly()).Get(ts.URL + "/admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbiddenAddress)
	assert.False(t, hit)
}
