// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/util"
)

const (
	// maxUploadFileSize is the per-file size limit.
	maxUploadFileSize = 5 << 20
	// maxUploadRequestSize bounds the whole multipart request.
	maxUploadRequestSize = 50 << 20
)

// UploadResult reports the outcome for one uploaded file.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	ThumbURL string `json:"thumb_url,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadResponse is the body for POST /api/upload.
type UploadResponse struct {
	Results []UploadResult `json:"results"`
}

// Upload handles POST /api/upload: multipart field "files", one or many.
// Files are processed one at a time; a failing file is recorded in its result
// and processing continues with the rest.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	lang := string(middleware.GetLocale(r))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestSize)
	if err := r.ParseMultipartForm(maxUploadRequestSize); err != nil {
		WriteBadRequest(w, "Invalid multipart request", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		WriteBadRequest(w, i18n.T(lang, "upload.no_files"), nil)
		return
	}

	results := make([]UploadResult, 0, len(files))
	succeeded := 0

	for _, header := range files {
		result := h.processUpload(header, lang)
		if result.Error == "" {
			succeeded++
		}
		results = append(results, result)
	}

	status := http.StatusOK
	if succeeded == 0 {
		status = http.StatusBadRequest
	}
	WriteJSON(w, status, Response{Data: UploadResponse{Results: results}})
}

// processUpload runs one file through the imaging pipeline.
func (h *Handler) processUpload(header *multipart.FileHeader, lang string) UploadResult {
	result := UploadResult{Filename: header.Filename}

	if header.Size > maxUploadFileSize {
		result.Error = fmt.Sprintf("file exceeds the %dMB limit", maxUploadFileSize>>20)
		return result
	}

	file, err := header.Open()
	if err != nil {
		result.Error = "failed to read file"
		return result
	}
	defer func() { _ = file.Close() }()

	// Sniff the MIME type before handing the data to the decoder.
	head := make([]byte, 512)
	n, _ := file.Read(head)
	mimeType := h.processor.DetectMimeType(head[:n])
	if !h.processor.IsSupportedType(mimeType) {
		result.Error = i18n.T(lang, "upload.invalid_type")
		return result
	}
	if _, err := file.Seek(0, 0); err != nil {
		result.Error = "failed to read file"
		return result
	}

	fileID := uuid.New().String()
	filename := slugifyFilename(header.Filename)

	processed, err := h.processor.ProcessImage(file, fileID, filename)
	if err != nil {
		h.logger.Warn("image upload failed",
			"category", "content",
			"filename", header.Filename,
			"error", err,
		)
		result.Error = err.Error()
		return result
	}

	variants, err := h.processor.CreateAllVariants(processed.FilePath, fileID, filename)
	if err != nil {
		// The original saved; serve it without variants.
		h.logger.Warn("variant generation failed",
			"category", "content",
			"filename", header.Filename,
			"error", err,
		)
	}

	result.URL = path.Join("/uploads", "originals", fileID, filename)
	result.Width = processed.Width
	result.Height = processed.Height
	for _, v := range variants {
		if v.Type == model.VariantThumb {
			result.ThumbURL = path.Join("/uploads", model.VariantThumb, fileID, filename)
		}
	}
	return result
}

// DeleteUpload handles DELETE /api/uploads/{uuid}: removes the stored
// original and every generated variant for one upload. Content rows hold
// weak references to the URLs, so nothing cascades; rows pointing at the
// deleted upload keep their (now dangling) URL until edited.
func (h *Handler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "uuid")
	if _, err := uuid.Parse(fileID); err != nil {
		WriteBadRequest(w, "Invalid upload id", nil)
		return
	}

	if err := h.processor.DeleteFiles(fileID); err != nil {
		h.logger.Warn("upload cleanup failed",
			"category", "content",
			"upload_id", fileID,
			"error", err,
		)
		WriteInternalError(w, "Failed to delete upload")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// slugifyFilename normalizes an upload name: the base becomes a slug, the
// extension is kept lowercase.
func slugifyFilename(name string) string {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	stem := util.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "image"
	}
	return stem + ext
}
