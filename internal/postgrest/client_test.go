package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClient_Get(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"folder_id":"f1","title":"Web Development"}]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, AuthToken: "Bearer token"}, zap.NewNop())

	var out []map[string]interface{}
	err := c.Get(context.Background(), "/folders?order=title", &out)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token", gotAuth)
	assert.Equal(t, "/folders?order=title", gotPath)
	assert.Len(t, out, 1)
	assert.Equal(t, "Web Development", out[0]["title"])
}

func TestClient_GetServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, zap.NewNop())

	var out []map[string]interface{}
	err := c.Get(context.Background(), "/notes", &out)

	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
}

func TestClient_PostStatuses(t *testing.T) {
	tests := []struct {
		name       string
		respStatus int
		wantStatus int
		wantErr    bool
	}{
		{name: "created", respStatus: http.StatusCreated, wantErr: false},
		{name: "duplicate", respStatus: http.StatusConflict, wantStatus: http.StatusConflict, wantErr: true},
		{name: "invalid payload", respStatus: http.StatusBadRequest, wantStatus: http.StatusBadRequest, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				w.WriteHeader(tt.respStatus)
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL}, zap.NewNop())
			err := c.Post(context.Background(), "/subscribers", map[string]string{"email": "a@b.nl"})

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var statusErr *StatusError
			assert.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.wantStatus, statusErr.Status)
		})
	}
}
