package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/whoisbatch/domain_query_api/models"
	"github.com/whoisbatch/domain_query_api/pkg/query"
)

type stubLookuper struct {
	domains    []string
	registered bool
	failOn     string
}

func (s *stubLookuper) Lookup(_ context.Context, domain string) (*query.DomainQueryResult, error) {
	s.domains = append(s.domains, domain)
	if s.failOn != "" && domain == s.failOn {
		return nil, &query.LookupError{Domain: domain, Reason: "service returned error: boom"}
	}
	parts := strings.Split(domain, ".")
	return &query.DomainQueryResult{
		Domain:       domain,
		DomainSuffix: parts[len(parts)-1],
		IsRegistered: s.registered,
		QueryTime:    "2026-01-12 10:00:30",
	}, nil
}

func newTestRouter(t *testing.T, config string, client query.Lookuper) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "suffixes.json")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	h := NewDomainQueryHandlers(path, client, zap.NewNop())
	router := gin.New()
	router.POST("/api/v1/domain-query/batch", h.BatchQueryHandler)
	router.POST("/api/v1/domain-query/batch-stream", h.StreamQueryHandler)
	return router
}

func doRequest(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBatchQuerySuccess(t *testing.T) {
	client := &stubLookuper{}
	router := newTestRouter(t, `{"suffixes": ["com"]}`, client)

	w := doRequest(router, "/api/v1/domain-query/batch", `{"text": "alpha"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DomainQueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "alpha.com", resp.Items[0].Domain)
	assert.Equal(t, "com", resp.Items[0].DomainSuffix)
	assert.False(t, resp.Items[0].IsRegistered)
	assert.Equal(t, []string{"alpha.com"}, client.domains)
}

func TestBatchQueryMergesLinesBeforeText(t *testing.T) {
	client := &stubLookuper{}
	router := newTestRouter(t, `["com"]`, client)

	w := doRequest(router, "/api/v1/domain-query/batch", `{"lines": ["beta"], "text": "alpha"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"beta.com", "alpha.com"}, client.domains)
}

func TestBatchQueryRejectsEmptyInput(t *testing.T) {
	router := newTestRouter(t, `["com"]`, &stubLookuper{})

	w := doRequest(router, "/api/v1/domain-query/batch", `{"text": ""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no valid domain fragments")
}

func TestBatchQueryReportsLookupError(t *testing.T) {
	client := &stubLookuper{failOn: "alpha.com"}
	router := newTestRouter(t, `["com"]`, client)

	w := doRequest(router, "/api/v1/domain-query/batch", `{"text": "alpha"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "alpha.com")
}

func TestBatchQueryInvalidPayload(t *testing.T) {
	router := newTestRouter(t, `["com"]`, &stubLookuper{})

	w := doRequest(router, "/api/v1/domain-query/batch", `{"text": 42}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamQueryEmitsEventSequence(t *testing.T) {
	client := &stubLookuper{}
	router := newTestRouter(t, `["com"]`, client)

	w := doRequest(router, "/api/v1/domain-query/batch-stream", `{"text": "alpha"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/x-ndjson")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)

	var events []map[string]any
	for _, line := range lines {
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		events = append(events, event)
	}

	assert.Equal(t, "start", events[0]["type"])
	assert.Equal(t, float64(1), events[0]["total"])

	assert.Equal(t, "result", events[1]["type"])
	assert.Equal(t, "alpha.com", events[1]["domain"])
	assert.Equal(t, float64(1), events[1]["completed"])
	assert.Equal(t, float64(1), events[1]["total"])

	assert.Equal(t, "complete", events[2]["type"])
	assert.Equal(t, float64(1), events[2]["completed"])
	assert.Equal(t, []any{"alpha.com"}, events[2]["unregistered"])
}

func TestStreamQueryReportsLookupErrorEvent(t *testing.T) {
	client := &stubLookuper{failOn: "alpha.io"}
	router := newTestRouter(t, `["com", "io"]`, client)

	w := doRequest(router, "/api/v1/domain-query/batch-stream", `{"text": "alpha"}`)
	require.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &last))
	assert.Equal(t, "error", last["type"])
	assert.Equal(t, float64(1), last["completed"])
	assert.Equal(t, float64(2), last["total"])
}

func TestStreamQuerySetupErrorIsRequestLevel(t *testing.T) {
	router := newTestRouter(t, `{"suffixes": []}`, &stubLookuper{})

	w := doRequest(router, "/api/v1/domain-query/batch-stream", `{"text": "alpha"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no enabled domain suffixes")
}

func TestStreamQueryRejectsEmptyInput(t *testing.T) {
	router := newTestRouter(t, `["com"]`, &stubLookuper{})

	w := doRequest(router, "/api/v1/domain-query/batch-stream", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMergeInputs(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "t"}, mergeInputs(models.DomainQueryRequest{Text: "t", Lines: []string{"a", "b"}}))
	assert.Equal(t, []string{"a"}, mergeInputs(models.DomainQueryRequest{Lines: []string{"a"}}))
	assert.Equal(t, []string{"t"}, mergeInputs(models.DomainQueryRequest{Text: "t"}))
	assert.Equal(t, []string{""}, mergeInputs(models.DomainQueryRequest{}))
}
