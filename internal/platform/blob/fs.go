package blob

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	perr "stockboard/internal/platform/errors"
)

// Filesystem maps keys to files under a root directory
type Filesystem struct {
	root string
}

// NewFilesystem returns a store rooted at root, creating it when missing
func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "create blob root %s", root)
	}
	return &Filesystem{root: root}, nil
}

// Driver names the backend
func (s *Filesystem) Driver() Driver { return DriverFilesystem }

// Root is the directory blobs live under
func (s *Filesystem) Root() string { return s.root }

// sanitizeKey keeps keys relative and inside root
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", perr.InvalidArgf("empty blob key")
	}
	if strings.Contains(key, "..") {
		return "", perr.InvalidArgf("invalid blob key %q: contains '..'", key)
	}
	if strings.HasPrefix(key, "/") || filepath.IsAbs(key) {
		return "", perr.InvalidArgf("invalid blob key %q: absolute", key)
	}
	return filepath.ToSlash(filepath.Clean(key)), nil
}

func (s *Filesystem) pathFor(key string) (string, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(k)), nil
}

// Get reads the file for key
func (s *Filesystem) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read blob %s", key)
	}
	return b, nil
}

// Put writes through a temp file and renames it over the target
func (s *Filesystem) Put(_ context.Context, key string, data []byte) error {
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "create blob dir for %s", key)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".blob-*")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "create temp for %s", key)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "write blob %s", key)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "close blob %s", key)
	}
	if err := os.Rename(name, p); err != nil {
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "rename blob %s", key)
	}
	return nil
}

// Delete removes the file for key
func (s *Filesystem) Delete(_ context.Context, key string) error {
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "delete blob %s", key)
	}
	return nil
}

// Ping checks the root is still a directory
func (s *Filesystem) Ping(context.Context) error {
	fi, err := os.Stat(s.root)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "stat blob root")
	}
	if !fi.IsDir() {
		return perr.Unavailablef("blob root %s is not a directory", s.root)
	}
	return nil
}
