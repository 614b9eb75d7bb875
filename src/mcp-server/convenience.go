// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"net/http"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/gds"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Convenience routes mirror dispatcher answers for clients that can only GET.
const (
	routeGuide      = "/mcp/guide"
	routeTools      = "/mcp/tools"
	routeLogin      = "/mcp/snippet/login"
	routeGenerate   = "/mcp/generate"
	routeTokens     = "/mcp/tokens"
	routeComponents = "/mcp/components"
	routePlatform   = "/mcp/platform"
)

func convenienceRoutes() []string {
	return []string{
		routeGuide,
		routeTools,
		routeLogin,
		routeGenerate + "?prompt=",
		routeTokens,
		routeComponents,
		routePlatform,
	}
}

func (t *httpTransport) registerConvenienceRoutes(router *mux.Router) {
	get := router.Methods(http.MethodGet).Subrouter()
	get.HandleFunc(routeGuide, t.handleGuide)
	get.HandleFunc(routeTools, t.handleTools)
	get.HandleFunc(routeLogin, t.handleLoginSnippet)
	get.HandleFunc(routeGenerate, t.handleGenerate)
	get.HandleFunc(routeTokens, t.handleTokens)
	get.HandleFunc(routeComponents, t.handleComponents)
	get.HandleFunc(routePlatform, t.handlePlatform)
}

func (t *httpTransport) handleGuide(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, t.dispatcher.Library().GuideDocument())
}

func (t *httpTransport) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toolsListResult{Tools: t.dispatcher.Tools()})
}

func (t *httpTransport) handleLoginSnippet(w http.ResponseWriter, r *http.Request) {
	lib := t.dispatcher.Library()
	writeText(w, http.StatusOK, lib.WithHeader(lib.LoginCard()))
}

// handleGenerate answers with the login snippet when the prompt reads as a
// sign-in request, and with generic instructions for everything else.
func (t *httpTransport) handleGenerate(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	lib := t.dispatcher.Library()

	intent := gds.Classify(prompt)
	t.log.Debug("classified prompt", zap.Stringer("intent", intent))

	if intent == gds.Login {
		writeText(w, http.StatusOK, lib.WithHeader(lib.LoginCard()))
		return
	}

	body, err := lib.GenericInstructions(prompt)
	if err != nil {
		t.log.Error("failed to render generic instructions", zap.Error(err))
		writeText(w, http.StatusInternalServerError, "Internal error: failed to render instructions")
		return
	}
	writeText(w, http.StatusOK, lib.WithHeader(body))
}

func (t *httpTransport) handleTokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tokens": t.dispatcher.Library().Tokens()})
}

func (t *httpTransport) handleComponents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"components": t.dispatcher.Library().Renames()})
}

func (t *httpTransport) handlePlatform(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, t.dispatcher.Library().Platform())
}
