package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tastings-with-tay/models"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	UploadRoute    = "/uploads"
	thumbnailDir   = "thumb"
	thumbnailWidth = 400
)

type UploadService interface {
	StoreImage(src io.Reader) (*models.UploadResult, error)
}

type uploadService struct {
	dir     string
	baseURL string
}

func NewUploadService(dir, baseURL string) UploadService {
	return &uploadService{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// StoreImage re-encodes an uploaded image as JPEG next to a thumbnail
// scaled to a fixed width.
func (s *uploadService) StoreImage(src io.Reader) (*models.UploadResult, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: file is not a supported image", models.ErrInvalidInput)
	}

	fileName := uuid.NewString() + ".jpg"
	originalPath := filepath.Join(s.dir, fileName)
	thumbnailPath := filepath.Join(s.dir, thumbnailDir, fileName)

	if err := os.MkdirAll(filepath.Dir(thumbnailPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := imaging.Save(img, originalPath, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return &models.UploadResult{
		URL:          s.baseURL + UploadRoute + "/" + fileName,
		ThumbnailURL: s.baseURL + UploadRoute + "/" + thumbnailDir + "/" + fileName,
	}, nil
}
