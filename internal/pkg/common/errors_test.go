package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorMessage(t *testing.T) {
	e := NewError(ErrCodeInternalError, "boom", http.StatusInternalServerError, nil)
	assert.Equal(t, "boom", e.Error())

	wrapped := NewError(ErrCodeUpstreamError, "upstream failed", http.StatusBadGateway, errors.New("connection refused"))
	assert.Equal(t, "connection refused", wrapped.Error())
}

func TestCustomErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	e := NewError(ErrCodeAIRequestFailed, "AI request failed", http.StatusBadGateway, cause)

	assert.ErrorIs(t, e, cause)

	var customErr *CustomError
	require.True(t, errors.As(fmt.Errorf("handler: %w", e), &customErr))
	assert.Equal(t, ErrCodeAIRequestFailed, customErr.Code)
	assert.Equal(t, http.StatusBadGateway, customErr.Status)
}

func TestWithErr(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := ErrAIRequestFailed.WithErr(cause)

	assert.Equal(t, ErrAIRequestFailed.Code, e.Code)
	assert.Equal(t, ErrAIRequestFailed.Message, e.Message)
	assert.Equal(t, ErrAIRequestFailed.Status, e.Status)
	assert.ErrorIs(t, e, cause)

	// The predefined value keeps a nil cause.
	assert.Nil(t, ErrAIRequestFailed.Err)
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		RespondError(c, ErrNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Not found", resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Code)
}

func TestPredefinedErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidRequest.Status)
	assert.Equal(t, http.StatusNotFound, ErrNotFound.Status)
	assert.Equal(t, http.StatusInternalServerError, ErrInternalError.Status)
	assert.Equal(t, http.StatusInternalServerError, ErrAINotConfigured.Status)
	assert.Equal(t, http.StatusBadGateway, ErrAIRequestFailed.Status)
	assert.Equal(t, http.StatusBadGateway, ErrUpstreamError.Status)
}
