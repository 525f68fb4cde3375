// file: internals/helpers/storage/image_store.go
package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ImageStore persists normalized images on local disk and hands back the
// public URL plus a content hash. The hash is what the attendance ledger
// uses to reject a photo re-used on the same day.
type ImageStore struct {
	Root       string // e.g. ./uploads
	PublicBase string // e.g. /uploads
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{Root: root, PublicBase: "/uploads"}
}

type StoredImage struct {
	PublicURL string
	AbsPath   string
	SHA256    string
}

const (
	maxDimension = 1600
	webpQuality  = 80
)

func (s *ImageStore) EnsureDirs(subdirs ...string) error {
	for _, d := range subdirs {
		if err := os.MkdirAll(filepath.Join(s.Root, d), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Normalize decodes any supported image, caps the longest side at
// maxDimension and re-encodes as webp. Returns an error for non-images.
func Normalize(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Save normalizes and writes the image under Root/subdir. The returned
// SHA256 is computed over the original bytes, not the re-encoded ones, so
// resubmitting the identical upload always collides.
func (s *ImageStore) Save(subdir string, data []byte) (*StoredImage, error) {
	sum := sha256.Sum256(data)

	normalized, err := Normalize(data)
	if err != nil {
		return nil, err
	}

	if err := s.EnsureDirs(subdir); err != nil {
		return nil, err
	}
	name := uuid.NewString() + ".webp"
	abs := filepath.Join(s.Root, subdir, name)
	if err := os.WriteFile(abs, normalized, 0o644); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}

	return &StoredImage{
		PublicURL: s.PublicBase + "/" + subdir + "/" + name,
		AbsPath:   abs,
		SHA256:    hex.EncodeToString(sum[:]),
	}, nil
}
