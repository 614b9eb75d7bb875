// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// rpcEnvelope mirrors the wire shape of a JSON-RPC response for decoding in tests.
type rpcEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		StructuredContent struct {
			Files []struct {
				Path    string `json:"path"`
				Content string `json:"content"`
			} `json:"files"`
			Notes []string `json:"notes"`
		} `json:"structuredContent"`
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestHandler(t *testing.T, mutate func(*Config)) http.Handler {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	d := newTestDispatcher(t, func(c *Config) { *c = *cfg })
	return NewHTTPHandler(d, cfg, nil)
}

func serve(h http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postRPC(h http.Handler, body string) *httptest.ResponseRecorder {
	return serve(h, http.MethodPost, "/mcp", body, http.Header{
		"Content-Type": {"application/json"},
		"Accept":       {bothAccept},
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) rpcEnvelope {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var env rpcEnvelope
	require.NoError(t, jsonx.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "2.0", env.JSONRPC)
	return env
}

func TestHealthRoutes(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, path := range []string{"/health", "/"} {
		rec := serve(h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "ok", rec.Body.String(), path)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	}
}

func TestHandleRPCGenerateComponent(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postRPC(h, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"gds_generate_component","arguments":{"name":"Hero","purpose":"Landing banner"}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	assert.EqualValues(t, 1, env.ID)
	require.Len(t, env.Result.Content, 1)
	assert.Equal(t, "text", env.Result.Content[0].Type)
	assert.Contains(t, env.Result.Content[0].Text, "HeroProps")
	assert.Contains(t, env.Result.Content[0].Text, "Landing banner")
	require.Len(t, env.Result.StructuredContent.Files, 2)
	assert.Equal(t, "src/components/Hero.tsx", env.Result.StructuredContent.Files[0].Path)
	assert.NotContains(t, rec.Body.String(), `"error"`)
}

func TestHandleRPCToolsList(t *testing.T) {
	h := newTestHandler(t, nil)

	first := postRPC(h, `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)
	second := postRPC(h, `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`)
	assert.Equal(t, first.Body.String(), second.Body.String())

	env := decodeEnvelope(t, first)
	assert.Equal(t, "a", env.ID)
	require.Len(t, env.Result.Tools, 3)
	assert.Equal(t, ToolNameGenerateComponent, env.Result.Tools[0].Name)
}

func TestHandleRPCErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		accept string
		status int
		code   int
		nullID bool
	}{
		{"not acceptable", `{"jsonrpc":"2.0","id":1,"method":"ping"}`, "text/plain", http.StatusNotAcceptable, -32000, true},
		{"json only", `{"jsonrpc":"2.0","id":1,"method":"ping"}`, "application/json", http.StatusNotAcceptable, -32000, true},
		{"parse error", `{"jsonrpc":`, bothAccept, http.StatusBadRequest, -32700, true},
		{"empty body", ``, bothAccept, http.StatusBadRequest, -32700, true},
		{"array body", `[{"jsonrpc":"2.0","id":1,"method":"ping"}]`, bothAccept, http.StatusOK, -32600, true},
		{"scalar body", `42`, bothAccept, http.StatusOK, -32600, true},
		{"object id", `{"jsonrpc":"2.0","id":{"x":1},"method":"ping"}`, bothAccept, http.StatusOK, -32600, true},
		{"unknown method", `{"jsonrpc":"2.0","id":2,"method":"foo/bar"}`, bothAccept, http.StatusOK, -32601, false},
		{"invalid argument", `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"gds_generate_component","arguments":{"name":"  ","purpose":"x"}}}`, bothAccept, http.StatusOK, -32602, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil)
			rec := serve(h, http.MethodPost, "/mcp", tt.body, http.Header{"Accept": {tt.accept}})
			assert.Equal(t, tt.status, rec.Code)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			if tt.nullID {
				assert.Nil(t, env.ID)
				assert.Contains(t, rec.Body.String(), `"id":null`)
			} else {
				assert.NotNil(t, env.ID)
			}
		})
	}
}

func TestHandleRPCInvalidUTF8(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := postRPC(h, "{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"bad\xff\xfe\"}")
	require.NotEmpty(t, rec.Body.Bytes())
	assert.True(t, utf8.Valid(rec.Body.Bytes()), "%q", rec.Body.String())

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.NotContains(t, env.Error.Message, "\xff")
}

func TestRecoverMiddleware(t *testing.T) {
	tr := &httpTransport{log: zap.NewNop()}
	h := requestIDMiddleware(tr.recoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := serve(h, http.MethodGet, "/mcp/tools", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotEmpty(t, rec.Body.Bytes())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, -32603, env.Error.Code)
	assert.Equal(t, "Internal error: unexpected failure", env.Error.Message)
	assert.Nil(t, env.ID)
}

func TestRecoverMiddlewareAbortHandler(t *testing.T) {
	tr := &httpTransport{log: zap.NewNop()}
	h := tr.recoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h, http.MethodGet, "/", "", nil)
	})
}

func TestHandleRPCBodyTooLarge(t *testing.T) {
	h := newTestHandler(t, func(c *Config) { c.Server.MaxBodyBytes = 64 })

	body := `{"jsonrpc":"2.0","id":1,"method":"ping","params":{"pad":"` + strings.Repeat("x", 128) + `"}}`
	rec := postRPC(h, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, -32600, env.Error.Code)
	assert.Equal(t, "Invalid request: body exceeds 64 bytes", env.Error.Message)
}

func TestRequestID(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, "/health", "", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = serve(h, http.MethodGet, "/health", "", nil)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestHandleInfo(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, "/mcp", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc serverDocument
	require.NoError(t, jsonx.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, ServerName, doc.Server.Name)
	assert.Equal(t, "0.2.0", doc.Server.Version)
	assert.Equal(t, DefaultProtocolVersion, doc.ProtocolVersion)
	assert.Equal(t, "POST /mcp", doc.Endpoint)
	assert.Contains(t, doc.Methods, "tools/call")
	assert.Contains(t, doc.Methods, "resources/read")
	require.Len(t, doc.Tools, 3)
	assert.Len(t, doc.Resources, 5)
	assert.Contains(t, doc.Routes, "/mcp/generate?prompt=")
}

func TestConvenienceRoutes(t *testing.T) {
	h := newTestHandler(t, nil)
	d := newTestDispatcher(t, nil)
	lib := d.Library()

	generic, err := lib.GenericInstructions("dashboard with a table")
	require.NoError(t, err)

	tests := []struct {
		name        string
		target      string
		contentType string
		want        string
		contains    []string
	}{
		{"guide", routeGuide, "text/plain; charset=utf-8", lib.GuideDocument(), nil},
		{"login snippet", routeLogin, "text/plain; charset=utf-8", lib.WithHeader(lib.LoginCard()), nil},
		{"generate login en", routeGenerate + "?prompt=" + url.QueryEscape("Build a login page"), "text/plain; charset=utf-8", lib.WithHeader(lib.LoginCard()), nil},
		{"generate login fi", routeGenerate + "?prompt=" + url.QueryEscape("Kirjautumissivu"), "text/plain; charset=utf-8", lib.WithHeader(lib.LoginCard()), nil},
		{"generate generic", routeGenerate + "?prompt=" + url.QueryEscape("dashboard with a table"), "text/plain; charset=utf-8", lib.WithHeader(generic), nil},
		{"tools", routeTools, "application/json; charset=utf-8", "", []string{`"gds_generate_component"`, `"inputSchema"`}},
		{"tokens", routeTokens, "application/json; charset=utf-8", "", []string{`"tokens"`, `"bg.default"`}},
		{"components", routeComponents, "application/json; charset=utf-8", "", []string{`"components"`, `"Separator"`}},
		{"platform", routePlatform, "application/json; charset=utf-8", "", []string{`"framework"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodGet, tt.target, "", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			if tt.want != "" {
				assert.Equal(t, tt.want, rec.Body.String())
			}
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestGenerateRouteEmptyPrompt(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodGet, routeGenerate, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "export function LoginCard")
}

func TestConvenienceRoutesDisabled(t *testing.T) {
	h := newTestHandler(t, func(c *Config) { c.Server.ConvenienceRoutes = false })

	rec := serve(h, http.MethodGet, routeGuide, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/mcp", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"routes"`)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(h, http.MethodPost, routeGuide, "{}", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = serve(h, http.MethodDelete, "/mcp", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t, func(c *Config) { c.Server.CORSOrigins = []string{"https://app.example.com"} })

	rec := serve(h, http.MethodGet, "/health", "", http.Header{"Origin": {"https://app.example.com"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(h, http.MethodGet, "/health", "", http.Header{"Origin": {"https://evil.example.com"}})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":-32603`)
}
