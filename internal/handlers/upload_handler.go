package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"founditBack/utils"
)

// UploadHandler stores report photos in object storage and hands back public
// URLs for the client to attach to item and person submissions.
type UploadHandler struct{}

const maxUploadSize = 32 << 20 // 32MB

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

func (h *UploadHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionUserID(r); !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No images provided")
		return
	}

	var urls []string
	for _, fileHeader := range files {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		contentType, ok := allowedImageTypes[ext]
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported file type: %s", ext))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to open file")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to read file")
			return
		}

		fileName := uuid.New().String() + ext
		url, err := utils.UploadFileToS3(data, fileName, "reports", contentType)
		if err != nil {
			log.Printf("UploadImages error: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to store file")
			return
		}
		urls = append(urls, url)
	}

	respond(w, http.StatusCreated, "Images uploaded", envelope{"urls": urls})
}
