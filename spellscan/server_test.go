package spellscan

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	newTestChecker(englishStub()).Routes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAnalyzeHandler(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/analyze", "application/json",
		strings.NewReader(`{"text": "Tihs is a tset."}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 2, got.UnknownCount)
	assert.Equal(t, "This is a test.", got.Corrected)
	assert.Equal(t, 4, got.EditDistance)
}

func TestAnalyzeHandlerRejectsEmptyText(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/analyze", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeHandlerProtectedWords(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/analyze", "application/json",
		strings.NewReader(`{"text": "tihs is a test", "words": ["tihs"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Zero(t, got.UnknownCount)
}

func multipartUpload(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestBatchHandlerJSON(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, nil, map[string]string{
		"a.txt": "i recieve files",
		"b.txt": "recieve the test",
	})
	resp, err := http.Post(srv.URL+"/v1/batch", ctype, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Unique       []map[string]string `json:"unique"`
		TotalUnknown int                 `json:"totalUnknown"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 2, got.TotalUnknown)
	require.Len(t, got.Unique, 1, "one deduplicated row for recieve")
}

func TestBatchHandlerCSV(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, map[string]string{"format": "csv"},
		map[string]string{"a.txt": "a tset"})
	resp, err := http.Post(srv.URL+"/v1/batch", ctype, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, buf.String(), "tset,,test")
}

func TestBatchHandlerZIP(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, map[string]string{"format": "zip"},
		map[string]string{"a.txt": "a tset"})
	resp, err := http.Post(srv.URL+"/v1/batch", ctype, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
}

func TestBatchHandlerNoFindingsNoArtifact(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, map[string]string{"format": "csv"},
		map[string]string{"clean.txt": "this is a test"})
	resp, err := http.Post(srv.URL+"/v1/batch", ctype, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestBatchHandlerNoFiles(t *testing.T) {
	srv := newTestServer(t)

	body, ctype := multipartUpload(t, map[string]string{"format": "json"}, nil)
	resp, err := http.Post(srv.URL+"/v1/batch", ctype, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthHandler(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "spellscan", got["service"])
}
