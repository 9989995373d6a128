//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropdeck/internal/handler/httperr"
	"dropdeck/internal/pkg/errs"
)

func TestAbortWithErrorWritesPublicBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.AbortWithError(c, http.StatusConflict, errs.New("boom"), "Product already has a pending drop")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Product already has a pending drop"}}`, rec.Body.String())
	require.Len(t, c.Errors, 1)
	assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
	assert.EqualError(t, c.Errors[0].Err, "boom")
}

func TestAbortWithErrorWithoutCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "Access token required")
}
