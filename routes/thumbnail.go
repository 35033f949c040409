package routes

import (
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const thumbSize = 320

// makeThumbnail writes a bounded copy of an uploaded image next to the
// original, under uploads/thumbs. Failures are logged and skipped; the
// original upload is already saved.
func makeThumbnail(filename string) {
	src := filepath.Join(UploadsDir, filename)
	img, err := imaging.Open(src)
	if err != nil {
		log.Println("Thumbnail skipped for", filename, ":", err)
		return
	}

	thumbDir := filepath.Join(UploadsDir, "thumbs")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		log.Println("Failed to create thumbs directory:", err)
		return
	}

	thumb := imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, filename)); err != nil {
		log.Println("Failed to save thumbnail for", filename, ":", err)
	}
}
