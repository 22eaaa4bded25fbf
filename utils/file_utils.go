// utils/file_utils.go
package utils

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// SaveEventImage stores an uploaded event image under uploads/events and
// writes a 400px-wide thumbnail next to it under uploads/thumbnails. Returns
// the relative path of the stored original.
func SaveEventImage(imageFile *multipart.FileHeader) (string, error) {
	uploadDir := filepath.Join("uploads", "events")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(imageFile.Filename))
	filePath := filepath.Join(uploadDir, filename)

	src, err := imageFile.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	// Thumbnail failures are logged but never fail the upload
	if err := writeThumbnail(filePath, filename); err != nil {
		log.Printf("Failed to generate thumbnail for %s: %v", filename, err)
	}

	return filePath, nil
}

func writeThumbnail(sourcePath, filename string) error {
	thumbDir := filepath.Join("uploads", "thumbnails")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return err
	}

	img, err := imaging.Open(sourcePath)
	if err != nil {
		return err
	}

	thumb := imaging.Resize(img, 400, 0, imaging.Lanczos)
	return imaging.Save(thumb, filepath.Join(thumbDir, filename))
}
