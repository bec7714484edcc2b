package handlers

import (
	"io"
	"net/http"

	apperrors "roster-portal-backend/internal/errors"
	"roster-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. The error
// message is the client-facing reason.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// formUpload reads a multipart form file into an upload payload
func formUpload(c *gin.Context, field string) (storage.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return storage.Upload{}, err
	}

	file, err := header.Open()
	if err != nil {
		return storage.Upload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return storage.Upload{}, err
	}

	return storage.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     data,
	}, nil
}
