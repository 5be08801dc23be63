package routes

import (
	"net/http"
	"testing"

	"github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// The paths below are a fixed front-end contract; renaming one is a breaking
// change even when the handler behind it is untouched.
func TestCaseRouteContract(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addCaseRoutes(r.Group("/v1"),
		handlers.NewCaseHandler(nil),
		handlers.NewInspectionHandler(nil),
		handlers.NewQuoteHandler(nil))

	want := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/cases"},
		{http.MethodGet, "/v1/cases"},
		{http.MethodGet, "/v1/cases/:caseId"},
		{http.MethodPost, "/v1/cases/:caseId/inspection"},
		{http.MethodPost, "/v1/cases/:caseId/estimator"},
		{http.MethodPost, "/v1/cases/:caseId/payoff/confirm"},
		{http.MethodPost, "/v1/cases/:caseId/complete"},
		{http.MethodGet, "/v1/cases/:caseId/pdf"},
		{http.MethodPut, "/v1/cases/:caseId/stage"},
		{http.MethodDelete, "/v1/cases/:caseId"},

		{http.MethodGet, "/v1/inspections/:token"},
		{http.MethodPut, "/v1/inspections/:token/draft"},
		{http.MethodPost, "/v1/inspections/:token/submit"},

		{http.MethodGet, "/v1/quotes/:token"},
		{http.MethodPost, "/v1/quotes/:token/submit"},
		{http.MethodPut, "/v1/quotes/:token/decision"},
		{http.MethodPut, "/v1/quotes/:token/paperwork"},
		{http.MethodGet, "/v1/quotes/case/:caseId"},
		{http.MethodPost, "/v1/quotes/case/:caseId/submit"},
		{http.MethodPut, "/v1/quotes/case/:caseId/decision"},
		{http.MethodPut, "/v1/quotes/case/:caseId/paperwork"},

		{http.MethodGet, "/v1/signing/:token"},
	}

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, w := range want {
		if !registered[w.method+" "+w.path] {
			t.Fatalf("route %s %s not registered", w.method, w.path)
		}
	}
}
