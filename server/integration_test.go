package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/poiesic/prodsearch"
	"github.com/poiesic/prodsearch/ai"
	"github.com/poiesic/prodsearch/ai/mock"
	"github.com/poiesic/prodsearch/catalog"
	"github.com/poiesic/prodsearch/core"
	"github.com/poiesic/prodsearch/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceServer(t *testing.T, factory *mock.Factory) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	repo, err := prodsearch.OpenCatalog(ctx, catalog.Sample())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	svc, err := prodsearch.NewService(ctx, repo, factory.Build)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	srv, err := server.New(svc)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getStatus(t *testing.T, ts *httptest.Server) core.Status {
	t.Helper()
	res, err := http.Get(ts.URL + "/status")
	require.NoError(t, err)
	defer res.Body.Close()

	var status core.Status
	require.NoError(t, json.NewDecoder(res.Body).Decode(&status))
	return status
}

func search(t *testing.T, ts *httptest.Server, query string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	res, err := http.PostForm(ts.URL+"/search", url.Values{"query": {query}})
	require.NoError(t, err)
	defer res.Body.Close()

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res, body
}

func TestEndToEnd_KeywordModel(t *testing.T) {
	factory := &mock.Factory{New: func(context.Context) (ai.EmbeddingProvider, error) {
		return mock.NewMockProviderWithEmbedder(mock.NewKeywordEmbedder(0)), nil
	}}
	ts := newServiceServer(t, factory)

	first := getStatus(t, ts)
	second := getStatus(t, ts)
	assert.True(t, first.Ready())
	assert.True(t, second.Ready())
	assert.Equal(t, 1, factory.CallCount())

	res, body := search(t, ts, "Smartphone")
	require.Equal(t, http.StatusOK, res.StatusCode)
	var results []core.RankedResult
	require.NoError(t, json.Unmarshal(body["results"], &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "Smartphone", results[0].Name)
	assert.Greater(t, results[0].Score, 50.0)

	res, body = search(t, ts, "xzqwplmno")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, string(body["results"]))
}

func TestEndToEnd_ProviderFailure(t *testing.T) {
	ts := newServiceServer(t, mock.FailingFactory(1000, nil))

	assert.Equal(t, core.Status{}, getStatus(t, ts))

	res, body := search(t, ts, "laptop")
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	var msg string
	require.NoError(t, json.Unmarshal(body["error"], &msg))
	assert.NotEmpty(t, msg)
	assert.True(t, strings.HasPrefix(msg, "Model is still loading"))
}
