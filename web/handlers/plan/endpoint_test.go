package plan

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/v1"), nil)
	return r
}

func TestListCountryValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing country", query: ""},
		{name: "too long", query: "?country=USA"},
		{name: "too short", query: "?country=U"},
		{name: "not alphanumeric", query: "?country=U!"},
	}

	r := testRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/plans"+tt.query, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "ValidationError")
		})
	}
}
