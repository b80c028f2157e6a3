package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"civicreport-be/routes"
	"civicreport-be/supabase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// newTestRouter wires the real routes against a fake upstream service and
// returns the engine plus the upstream base URL.
func newTestRouter(t *testing.T, upstream http.Handler) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	sb := supabase.NewClient(srv.URL, "test-key", zerolog.Nop())
	r := gin.New()
	routes.AuthRoutes(r, sb)
	routes.IssueRoutes(r, sb, zerolog.Nop())
	return r, srv.URL
}
