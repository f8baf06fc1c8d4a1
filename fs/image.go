package fs

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wardrobe"
)

// ReadImages loads the payload images for transmission, preserving order.
// MIME types are inferred from file extensions; an extension the platform
// does not recognize is rejected rather than guessed at.
func ReadImages(paths []string) ([]wardrobe.ImageInput, error) {
	images := make([]wardrobe.ImageInput, 0, len(paths))
	for _, path := range paths {
		mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
		if mimeType == "" {
			return nil, fmt.Errorf("could not infer a MIME type for %q; rename it with a known extension: %w",
				filepath.Base(path), wardrobe.ErrInvalidArgument)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", path, err)
		}
		images = append(images, wardrobe.ImageInput{Path: path, MIMEType: mimeType, Data: data})
	}
	return images, nil
}
