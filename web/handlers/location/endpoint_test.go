package location

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/v1"), nil, nil)
	return r
}

func put(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/locations/1001", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateRejectsSingleWordContactName(t *testing.T) {
	r := testRouter()

	w := put(r, `{"primaryContacts":[{"name":"Cher"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ValidationError")
	assert.Contains(t, w.Body.String(), "first and last name")
}

func TestUpdateRejectsTooManyContacts(t *testing.T) {
	r := testRouter()

	w := put(r, `{"primaryContacts":[
		{"name":"A One"},{"name":"B Two"},{"name":"C Three"}
	]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ValidationError")
}

func TestUpdateRequiresNumericSid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/locations/not-a-sid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ValidationError")
}
