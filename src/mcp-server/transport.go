// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by the request-id middleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// httpTransport adapts a [Dispatcher] to HTTP.
type httpTransport struct {
	dispatcher *Dispatcher
	cfg        *Config
	log        *zap.Logger
}

// NewHTTPHandler returns the HTTP surface of the server.
//
// Parameters:
//   - d: Dispatcher answering POST /mcp and backing the convenience routes
//   - cfg: Configuration (defaults are used when nil)
//   - log: Access and error logger (a no-op logger is used when nil)
//
// Returns:
//   - http.Handler: Router wrapped in request-id, access log, JSON-RPC panic recovery and optional CORS middleware
func NewHTTPHandler(d *Dispatcher, cfg *Config, log *zap.Logger) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	t := &httpTransport{dispatcher: d, cfg: cfg, log: log}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware, t.accessLogMiddleware, t.recoverMiddleware)

	router.HandleFunc("/health", handleOK).Methods(http.MethodGet)
	router.HandleFunc("/", handleOK).Methods(http.MethodGet)
	router.HandleFunc("/mcp", t.handleRPC).Methods(http.MethodPost)
	router.HandleFunc("/mcp", t.handleInfo).Methods(http.MethodGet)
	if cfg.Server.ConvenienceRoutes {
		t.registerConvenienceRoutes(router)
	}

	var h http.Handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(false),
	)(router)

	if len(cfg.Server.CORSOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(cfg.Server.CORSOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", "Accept", RequestIDHeader}),
			handlers.ExposedHeaders([]string{RequestIDHeader}),
		)(h)
	}
	return h
}

func handleOK(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

// handleRPC decodes the body and hands it to the dispatcher.
func (t *httpTransport) handleRPC(w http.ResponseWriter, r *http.Request) {
	body, err := gc.ReadLimited(r.Body, t.cfg.Server.MaxBodyBytes)
	if err != nil {
		if errors.Is(err, gc.ErrBodyTooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				jsonrpc.NewError(nil, jsonrpc.InvalidRequest("body exceeds "+fmt.Sprint(t.cfg.Server.MaxBodyBytes)+" bytes")))
			return
		}
		t.log.Warn("failed to read request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, jsonrpc.NewError(nil, jsonrpc.ParseError()))
		return
	}

	req, err := jsonrpc.DecodeRequest(body)
	if err != nil {
		var rpcErr *jsonrpc.Error
		if !errors.As(err, &rpcErr) {
			rpcErr = jsonrpc.ParseError()
		}
		status := http.StatusOK
		if rpcErr.Code == jsonrpc.CodeParseError {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, jsonrpc.NewError(nil, rpcErr))
		return
	}

	resp, status := t.dispatcher.Dispatch(r.Context(), req, r.Header)
	writeJSON(w, status, resp)
}

// serverDocument is the body of GET /mcp.
type serverDocument struct {
	Server          ServerIdentity `json:"server"`
	ProtocolVersion string         `json:"protocolVersion"`
	Endpoint        string         `json:"endpoint"`
	Methods         []string       `json:"methods"`
	Tools           []ToolInfo     `json:"tools"`
	Resources       []ResourceInfo `json:"resources,omitempty"`
	Routes          []string       `json:"routes,omitempty"`
}

// ServerIdentity names the server in the GET /mcp document.
type ServerIdentity struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// handleInfo describes the endpoint for clients that cannot POST.
func (t *httpTransport) handleInfo(w http.ResponseWriter, r *http.Request) {
	doc := serverDocument{
		Server:          ServerIdentity{Name: ServerName, Version: t.dispatcher.Version()},
		ProtocolVersion: t.dispatcher.ProtocolVersion(),
		Endpoint:        "POST /mcp",
		Methods:         t.dispatcher.Methods(),
		Tools:           t.dispatcher.ToolInfos(),
		Resources:       t.dispatcher.ResourceInfos(),
	}
	if t.cfg.Server.ConvenienceRoutes {
		doc.Routes = convenienceRoutes()
	}
	writeJSON(w, http.StatusOK, doc)
}

// requestIDMiddleware propagates X-Request-ID, generating one when the client sent none.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// accessLogMiddleware logs one line per request.
func (t *httpTransport) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		t.log.Info("http request",
			zap.String("requestId", RequestIDFromContext(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("duration", m.Duration),
		)
	})
}

// recoverMiddleware answers a handler panic with an internal error envelope.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func (t *httpTransport) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			t.log.Error("recovered from panic",
				zap.String("requestId", RequestIDFromContext(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Any("panic", rec),
			)
			writeJSON(w, http.StatusInternalServerError, jsonrpc.NewError(nil, jsonrpc.Internal("unexpected failure")))
		}()
		next.ServeHTTP(w, r)
	})
}

// recoveryLogger routes gorilla recovery output to zap. The gorilla handler
// only sees panics raised outside the router's middleware chain.
type recoveryLogger struct{ log *zap.Logger }

func (l recoveryLogger) Println(v ...any) {
	l.log.Error("recovered from panic", zap.String("panic", fmt.Sprint(v...)))
}

// writeJSON encodes v into a pooled buffer before committing the status.
// If encoding fails an internal error envelope is sent with HTTP 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := jsonx.Encode(buf, v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = jsonx.Encode(buf, jsonrpc.NewError(nil, jsonrpc.Internal("failed to encode response")))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
