package handlers_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParam attaches a chi URL parameter to an already-built request,
// so query parameters and path parameters can be combined in one request.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
