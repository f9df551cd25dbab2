package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotAnImage is returned when an upload cannot be decoded as an image.
var ErrNotAnImage = errors.New("storage: upload is not a valid image")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

const thumbnailSize = 150

// Variants holds the stored paths of one upload, relative to the store root.
type Variants struct {
	OriginalPath  string
	ThumbnailPath string
}

// FileStore writes uploaded images and their thumbnail variants under a
// local root directory. Only the relative paths are handed back for
// persistence; serving the files is the web layer's concern.
type FileStore struct {
	root string
	log  *logrus.Logger
}

// NewFileStore creates a FileStore rooted at root, creating the directory
// tree if needed.
func NewFileStore(root string, log *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &FileStore{root: root, log: log}, nil
}

// SaveImage validates the upload, stores the original under a fresh uuid
// name in subdir, and renders a bounded thumbnail variant next to it. The
// write is synchronous; the request blocks until both files are on disk.
func (s *FileStore) SaveImage(r io.Reader, filename, subdir string) (*Variants, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrNotAnImage
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString()
	origRel := filepath.Join(subdir, name+ext)
	thumbRel := filepath.Join(subdir, name+"_thumbnail"+ext)

	if err := os.WriteFile(filepath.Join(s.root, origRel), data, 0o644); err != nil {
		return nil, fmt.Errorf("write original: %w", err)
	}
	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.root, thumbRel)); err != nil {
		os.Remove(filepath.Join(s.root, origRel))
		return nil, fmt.Errorf("write thumbnail: %w", err)
	}

	return &Variants{OriginalPath: origRel, ThumbnailPath: thumbRel}, nil
}

// Remove unlinks stored files by their relative paths. Missing files are
// only logged; removal backs row deletions that already committed.
func (s *FileStore) Remove(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(filepath.Join(s.root, p)); err != nil && !os.IsNotExist(err) {
			s.log.WithError(err).WithField("path", p).Warn("failed to remove stored file")
		}
	}
}

// Root returns the store's root directory.
func (s *FileStore) Root() string {
	return s.root
}
