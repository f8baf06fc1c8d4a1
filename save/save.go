// Package save persists the image payloads of a model response as flat files.
package save

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/wardrobe"
)

// Store implements [wardrobe.Persister] over a local directory. The clock
// is injectable so tests can assert exact filenames.
type Store struct {
	now func() time.Time
}

// Interface compliance check.
var _ wardrobe.Persister = (*Store)(nil)

// Option configures a [Store].
type Option func(*Store)

// WithClock sets the clock used for collision-avoiding filename suffixes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store with the given options.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save writes every inline image part across resp's candidates under dir,
// creating it if absent, and returns the paths written in response order.
//
// The first image part gets exactly the preferred filename, with its
// extension replaced by one inferred from the part's MIME type when
// available. Every later part gets a collision-avoiding name of the form
// {base}_{UTCtimestamp}_{candidate:02d}_{part:02d}{ext}. A response with no
// inline image data is an error.
func (s *Store) Save(resp wardrobe.Response, dir, preferredName string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	timestamp := s.now().UTC().Format("20060102_150405")
	ext := filepath.Ext(preferredName)
	base := strings.TrimSuffix(preferredName, ext)
	if base == "" {
		base = "gemini_edit_" + timestamp
	}
	if ext == "" {
		ext = ".png"
	}

	var saved []string
	for ci, candidate := range resp.Candidates {
		for pi, part := range candidate.Parts {
			inline, ok := part.(wardrobe.InlineDataPart)
			if !ok || len(inline.Data) == 0 {
				continue
			}

			partExt := extensionFor(inline.MIMEType, ext)
			var name string
			if len(saved) == 0 {
				name = base + partExt
			} else {
				name = fmt.Sprintf("%s_%s_%02d_%02d%s", base, timestamp, ci, pi, partExt)
			}

			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, inline.Data, 0o644); err != nil {
				return saved, fmt.Errorf("write image %s: %w", path, err)
			}
			saved = append(saved, path)
		}
	}

	if len(saved) == 0 {
		return nil, fmt.Errorf("response did not include any inline image data to save: %w", wardrobe.ErrPersistence)
	}
	return saved, nil
}

// extensionFor maps a MIME type to a filename extension, preferring the
// conventional spelling for common image types over the platform table.
func extensionFor(mimeType, fallback string) string {
	switch mimeType {
	case "":
		return fallback
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return fallback
}
