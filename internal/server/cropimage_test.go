package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/cropvision"
)

// jpegMagic is enough of a JPEG header for content-type detection.
var jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}

func multipartImage(t *testing.T, fieldName, fileName, contentType string, data []byte, language string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	if language != "" {
		require.NoError(t, writer.WriteField("language", language))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func postImage(t *testing.T, srv *Server, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/crop-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestCropImage_Success(t *testing.T) {
	srv, stubs := newTestServer(t)

	body, contentType := multipartImage(t, "image", "leaf.jpg", "image/jpeg", jpegMagic, "hi")
	rec, payload := postImage(t, srv, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])

	analysis := payload["analysis"].(map[string]interface{})
	assert.Equal(t, "Tomato", analysis["plantType"])
	assert.Equal(t, "image/jpeg", stubs.vision.gotMime)
	assert.Equal(t, "hi", stubs.vision.gotLanguage)
	assert.Equal(t, len(jpegMagic), stubs.vision.gotBytes)
}

func TestCropImage_MissingImage(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartImage(t, "photo", "leaf.jpg", "image/jpeg", jpegMagic, "")
	rec, payload := postImage(t, srv, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
	errObj := payload["error"].(map[string]interface{})
	assert.Equal(t, "INPUT_VALIDATION_FAILED", errObj["code"])
}

func TestCropImage_EmptyImage(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartImage(t, "image", "leaf.jpg", "image/jpeg", nil, "")
	rec, _ := postImage(t, srv, body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCropImage_RejectsNonImage(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartImage(t, "image", "notes.txt", "text/plain", []byte("hello"), "")
	rec, _ := postImage(t, srv, body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCropImage_FallbackCarriesNote(t *testing.T) {
	srv, stubs := newTestServer(t)
	stubs.vision.assessment = &cropvision.Assessment{PlantType: "Unknown", UrgencyLevel: "medium"}
	stubs.vision.source = cropvision.SourceFallback

	body, contentType := multipartImage(t, "image", "leaf.jpg", "image/jpeg", jpegMagic, "")
	rec, payload := postImage(t, srv, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "fallback", payload["source"])
	assert.NotEmpty(t, payload["note"])
}

func TestCropImage_DefaultsLanguage(t *testing.T) {
	srv, stubs := newTestServer(t)

	body, contentType := multipartImage(t, "image", "leaf.jpg", "image/jpeg", jpegMagic, "")
	postImage(t, srv, body, contentType)
	assert.Equal(t, "en", stubs.vision.gotLanguage)
}
