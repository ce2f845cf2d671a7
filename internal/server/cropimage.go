package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/errors"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/cropvision"
)

// maxImageBytes caps uploads at 10 MB, comfortably above phone camera output.
const maxImageBytes = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func (s *Server) handleCropImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("multipart field 'image' is required"))
		return
	}
	if fileHeader.Size == 0 {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("uploaded image is empty"))
		return
	}
	if fileHeader.Size > maxImageBytes {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("image exceeds the 10 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("could not open uploaded image"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("could not read uploaded image"))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	if !allowedImageTypes[mimeType] {
		respondError(c, http.StatusBadRequest, apperrors.NewInputValidationError("unsupported image type, use JPEG, PNG or WebP"))
		return
	}

	language := c.PostForm("language")
	if language == "" {
		language = "en"
	}

	assessment, source := s.deps.Vision.Analyze(c.Request.Context(), data, mimeType, language)

	payload := gin.H{
		"analysis": assessment,
		"source":   source,
	}
	if source == cropvision.SourceFallback {
		payload["note"] = "Diagnosis model unavailable; showing generic guidance."
	}
	respondOK(c, payload)
}
