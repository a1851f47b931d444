package services

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tastings-with-tay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "http://localhost:8080/")

	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for x := 0; x < 800; x++ {
		img.Set(x, x%600, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	result, err := svc.StoreImage(&buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(result.URL, ".jpg"))
	assert.Contains(t, result.ThumbnailURL, "/uploads/thumb/")

	name := filepath.Base(result.URL)
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "thumb", name))
	assert.NoError(t, err)

	_, err = svc.StoreImage(strings.NewReader("definitely not an image"))
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}
