package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponse(rec, ContentType.JSON, `{"status":"created"}`, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"created"}`, rec.Body.String())
}

func TestWriteResponseBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseBytes(rec, ContentType.Text, []byte("no can do"), http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, ContentType.Text, rec.Header().Get("Content-Type"))
	assert.Equal(t, "no can do", rec.Body.String())
}

func TestWriteResponseBytesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseBytesOK(rec, ContentType.JSON, []byte(`{"findings":[]}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"findings":[]}`, rec.Body.String())
}

func TestWriteTextResponseOK(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteTextResponseOK(rec, "I'm OK, thanks ;)")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.Text, rec.Header().Get("Content-Type"))
	assert.Equal(t, "I'm OK, thanks ;)", rec.Body.String())
}

func TestWriteJSONResponseOK(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONResponseOK(rec, `{"token":"abc"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"token":"abc"}`, rec.Body.String())
}
