// Package pushover_test tests outcome classification for the message
// POST and the sound catalog lookup against stub servers.
// Related: internal/pushover/client.go
// Tags: pushover, http-client, outcome, errors, httptest
package pushover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() url.Values {
	fields := url.Values{}
	fields.Set("token", "app-token")
	fields.Set("user", "user-key")
	fields.Set("message", "hello")
	fields.Set("priority", "0")
	fields.Set("sound", "pushover")
	fields.Set("retry", "0")
	return fields
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		responseCode int
		responseBody string
		wantSuccess  bool
		wantReasons  []string
		wantRequest  string
	}{
		"accepted": {
			responseCode: http.StatusOK,
			responseBody: `{"status":1,"request":"647d2300-702c-4b38-8b2f-d56326ae460b"}`,
			wantSuccess:  true,
			wantRequest:  "647d2300-702c-4b38-8b2f-d56326ae460b",
		},
		"accepted with empty body object": {
			responseCode: http.StatusOK,
			responseBody: `{}`,
			wantSuccess:  true,
		},
		"server error with unparseable body": {
			responseCode: http.StatusInternalServerError,
			responseBody: `<html>boom</html>`,
			wantReasons:  []string{"server returned 500 Internal Server Error"},
		},
		"ok status with application errors": {
			responseCode: http.StatusOK,
			responseBody: `{"status":0,"errors":["invalid token"]}`,
			wantReasons:  []string{"invalid token"},
		},
		"bad request with application errors": {
			responseCode: http.StatusBadRequest,
			responseBody: `{"status":0,"errors":["user identifier is invalid","message cannot be blank"]}`,
			wantReasons: []string{
				"server returned 400 Bad Request",
				"user identifier is invalid",
				"message cannot be blank",
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/1/messages.json", r.URL.Path)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "user-key", r.PostForm.Get("user"))
				assert.Equal(t, "0", r.PostForm.Get("retry"))
				w.WriteHeader(tt.responseCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := NewClient(5 * time.Second)
			client.SetBaseURL(server.URL)

			outcome := client.Send(context.Background(), testFields())

			assert.Equal(t, tt.wantSuccess, outcome.Success())
			assert.Equal(t, tt.wantReasons, outcome.Reasons)
			if tt.wantRequest != "" {
				assert.Equal(t, tt.wantRequest, outcome.RequestID)
			}
		})
	}
}

func TestClient_Send_ConnectionFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Nothing is listening anymore.

	client := NewClient(time.Second)
	client.SetBaseURL(server.URL)

	outcome := client.Send(context.Background(), testFields())

	assert.False(t, outcome.Success())
	require.Len(t, outcome.Reasons, 1)
	assert.Contains(t, outcome.Reasons[0], "sending request")
}

func TestClient_Send_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":1}`))
	}))
	defer server.Close()

	client := NewClient(10 * time.Millisecond)
	client.SetBaseURL(server.URL)

	outcome := client.Send(context.Background(), testFields())

	assert.False(t, outcome.Success())
	require.Len(t, outcome.Reasons, 1)
	assert.Contains(t, outcome.Reasons[0], "sending request")
}

func TestClient_Send_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":1}`))
	}))
	defer server.Close()

	client := NewClient(0)
	client.SetBaseURL(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := client.Send(ctx, testFields())

	assert.False(t, outcome.Success())
}

func TestClient_Sounds(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		responseCode int
		responseBody string
		wantSounds   map[string]string
		wantErr      string
	}{
		"catalog returned": {
			responseCode: http.StatusOK,
			responseBody: `{"status":1,"sounds":{"pushover":"Pushover (default)","cosmic":"Cosmic"}}`,
			wantSounds:   map[string]string{"pushover": "Pushover (default)", "cosmic": "Cosmic"},
		},
		"invalid token": {
			responseCode: http.StatusBadRequest,
			responseBody: `{"status":0,"errors":["application token is invalid"]}`,
			wantErr:      "application token is invalid",
		},
		"unparseable body": {
			responseCode: http.StatusBadGateway,
			responseBody: `gateway error`,
			wantErr:      "unexpected status code: 502",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/1/sounds.json", r.URL.Path)
				assert.Equal(t, "app-token", r.URL.Query().Get("token"))
				w.WriteHeader(tt.responseCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := NewClient(5 * time.Second)
			client.SetBaseURL(server.URL)

			sounds, err := client.Sounds(context.Background(), "app-token")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSounds, sounds)
		})
	}
}
