// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Supported image MIME types for uploads.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// IsSupportedMimeType reports whether a MIME type is accepted for upload.
func IsSupportedMimeType(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// ImageVariantConfig describes how to derive one variant of an uploaded image.
type ImageVariantConfig struct {
	Width   int
	Height  int
	Quality int
	Crop    bool
}

// Image variant names.
const (
	VariantThumb = "thumb"
	VariantWeb   = "web"
)

// ImageVariants lists the variants generated for every uploaded image:
// a square thumbnail for admin listings and a web-sized rendition for
// the public galleries.
var ImageVariants = map[string]ImageVariantConfig{
	VariantThumb: {Width: 400, Height: 400, Quality: 80, Crop: true},
	VariantWeb:   {Width: 1600, Height: 1600, Quality: 85, Crop: false},
}

// UploadedFile describes one stored upload.
type UploadedFile struct {
	UUID         string `json:"uuid"`
	FileName     string `json:"file_name"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	URL          string `json:"url"`
	ThumbURL     string `json:"thumb_url,omitempty"`
	WebURL       string `json:"web_url,omitempty"`
}
