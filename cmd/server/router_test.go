package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"teamsync/internal/catalog"
	"teamsync/internal/site"
)

func TestRouterLogsUnmatchedRequests(t *testing.T) {
	src, err := catalog.NewEmbeddedSource()
	require.NoError(t, err)
	svc, err := catalog.NewService(context.Background(), src)
	require.NoError(t, err)
	content, err := site.Load()
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	router, err := newRouter(svc, content, zap.New(core))
	require.NoError(t, err)

	for _, tt := range []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/no-such-page", http.StatusNotFound},
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

		assert.Equal(t, tt.status, rr.Code, tt.path)
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader), tt.path)
	}

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/no-such-page", entries[1].ContextMap()["path"])
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])
}
