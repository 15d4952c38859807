package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/gateway"
)

const owner = "7f1c9a52-3b8e-4c1d-9a2f-0e5b6d7c8a91"

func TestHealth_InjectsTenantHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, owner, r.Header.Get(gateway.HeaderOwnerID))
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true,"time":"2026-10-15T08:00:00Z"}`))
	}))
	defer srv.Close()

	out, err := gateway.New(srv.URL+"/", 2*time.Second).Health(context.Background(), owner)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, 2026, out.Time.Year())
}

func TestDo_NonSuccessBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"ok":false,"error":"duplicate bahan"}`))
	}))
	defer srv.Close()

	err := gateway.New(srv.URL, time.Second).Do(context.Background(), owner, http.MethodPost, "/bahan", map[string]string{"nama": "Gula"}, nil)
	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusConflict, upErr.Status)
	assert.Equal(t, "duplicate bahan", upErr.Message)
	assert.True(t, gateway.IsUpstream(err))
}

func TestDo_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	var out map[string]any
	err := gateway.New(srv.URL, time.Second).Do(context.Background(), owner, http.MethodGet, "/bahan", nil, &out)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestDo_RequiresOwner(t *testing.T) {
	err := gateway.New("http://127.0.0.1:1", time.Second).Do(context.Background(), "", http.MethodGet, "/health", nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
