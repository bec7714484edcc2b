package service

import (
	"path/filepath"
	"strings"

	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/storage"
)

// Attachment size limits enforced by callers before the file store is invoked.
const (
	MaxAttachmentSize   = 1 * 1024 * 1024
	MaxTeamDocumentSize = 3 * 1024 * 1024
)

// Stored file categories under each user's upload directory.
const (
	CategorySignupDocs = "Documentacao"
	CategoryDocuments  = "Documentos"
)

// validateAttachment gates an upload on extension and size before it
// reaches the file store. sizeErr distinguishes the 1MB and 3MB caps.
func validateAttachment(upload storage.Upload, maxSize int64, sizeErr error) error {
	if !isPDF(upload.Filename) {
		return apperrors.ErrAttachmentNotPDF
	}
	if upload.Size > maxSize {
		return sizeErr
	}
	return nil
}

func isPDF(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}
