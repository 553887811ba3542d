package concern

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"grievance/internal/shared/constants"
	"grievance/internal/shared/errors"
)

// saveAttachments validates and stores uploaded files, returning the stored
// relative paths. Filenames are timestamped to avoid collisions.
func saveAttachments(c *gin.Context, uploadDir string, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !constants.AllowedAttachmentExtensions[ext] {
			return nil, errors.NewValidationError(fmt.Sprintf("file type %s is not allowed", ext))
		}

		if file.Size > constants.MaxAttachmentBytes {
			return nil, errors.NewValidationError(fmt.Sprintf("file %s exceeds the 5 MB size limit", file.Filename))
		}

		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		stored := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), sanitizeFilename(base), ext)
		dst := filepath.Join(uploadDir, stored)

		if err := c.SaveUploadedFile(file, dst); err != nil {
			return nil, errors.NewInternalError("failed to store attachment", err.Error())
		}

		paths = append(paths, dst)
	}

	return paths, nil
}

// sanitizeFilename strips path separators and other unsafe characters.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
