package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"net/http"
)

const maxImageBytes = 10 << 20 // 10 MB

// UploadHandler godoc
// @Summary Extract text from a handwritten-notes image
// @Description Proxies the image to the external OCR service. Results are
// @Description cached by image digest, so re-uploading the same notes is
// @Description served without another OCR round trip.
// @Tags ocr
// @Accept mpfd
// @Produce json
// @Param image formData file true "notes image"
// @Success 200 {object} ExtractedTextResult
// @Failure 400 {object} ErrorResult "No image uploaded"
// @Failure 502 {object} ErrorResult "OCR service failed"
// @Router /upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		_ = writeJSON(w, http.StatusBadRequest, ErrorResult{Error: "No image uploaded"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		_ = writeJSON(w, http.StatusBadRequest, ErrorResult{Error: "No image uploaded"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		_ = writeJSON(w, http.StatusBadRequest, ErrorResult{Error: "Failed to read image"})
		return
	}

	digest := sha256.Sum256(image)
	cacheKey := "ocr:text:" + hex.EncodeToString(digest[:])

	if textCache != nil {
		if text, ok := textCache.Get(cacheKey); ok {
			_ = writeJSON(w, http.StatusOK, ExtractedTextResult{ExtractedText: text})
			return
		}
	}

	text, err := ocrClient.ExtractText(r.Context(), image, header.Filename)
	if err != nil {
		log.Printf("Text extraction failed: %v", err)
		_ = writeJSON(w, http.StatusBadGateway, ErrorResult{Error: "Text extraction failed"})
		return
	}

	if textCache != nil {
		textCache.Set(cacheKey, text)
	}

	_ = writeJSON(w, http.StatusOK, ExtractedTextResult{ExtractedText: text})
}
