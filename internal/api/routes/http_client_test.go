package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// httpClient drives a gin engine in-process.
type httpClient struct {
	t       *testing.T
	router  *gin.Engine
	headers map[string]string
}

func newHTTPClient(t *testing.T, router *gin.Engine) *httpClient {
	return &httpClient{t: t, router: router, headers: map[string]string{}}
}

// as returns a client that acts as userID through the X-User-ID header.
func (c *httpClient) as(userID string) *httpClient {
	headers := map[string]string{"X-User-ID": userID}
	for k, v := range c.headers {
		if k != "X-User-ID" {
			headers[k] = v
		}
	}
	return &httpClient{t: c.t, router: c.router, headers: headers}
}

func (c *httpClient) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *httpClient) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil, "")
}

func (c *httpClient) sendJSON(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	if body == nil {
		return c.do(method, path, nil, "")
	}
	b, err := json.Marshal(body)
	require.NoError(c.t, err)
	return c.do(method, path, bytes.NewReader(b), "application/json")
}

// sendChunkedJSON sends a JSON body without a Content-Length, as chunked
// HTTP/1.1 and most HTTP/2 clients do.
func (c *httpClient) sendChunkedJSON(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	b, err := json.Marshal(body)
	require.NoError(c.t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *httpClient) upload(path, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(c.t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(c.t, err)
	_, err = fw.Write(content)
	require.NoError(c.t, err)
	require.NoError(c.t, mw.Close())
	return c.do(http.MethodPost, path, &buf, mw.FormDataContentType())
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
