package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/repositories"
)

// translateRepoError maps repository failures onto service errors.
func translateRepoError(err error, op string) error {
	if errors.Is(err, repositories.ErrInvalidID) {
		return fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func checkPage(page models.Page) error {
	if _, err := models.NewPage(page.Index, page.Size); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	return nil
}

// GetExtensionFromContentType maps an image MIME type to a file extension.
func GetExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && parts[0] == "image" && parts[1] != "" {
			// image/svg+xml -> .svg
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidImage, contentType)
	}
}
