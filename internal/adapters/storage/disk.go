// Package storage saves post images on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const uploadDir = "posts"

// DiskStore writes uploads under root/posts and serves them below baseURL
type DiskStore struct {
	root    string
	baseURL string
	logger  *zap.Logger
}

func NewDiskStore(root, baseURL string, logger *zap.Logger) *DiskStore {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &DiskStore{root: root, baseURL: baseURL, logger: logger}
}

// Save returns a reference relative to root, e.g. posts/1700000000_cat.png
func (s *DiskStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(filepath.Clean("/" + filename))
	if name == "/" || name == "." {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	dir := filepath.Join(s.root, uploadDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	stored := fmt.Sprintf("%d_%s", time.Now().UnixNano(), name)
	full := filepath.Join(dir, stored)
	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(full)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(full)
		return "", err
	}

	ref := path.Join(uploadDir, stored)
	s.logger.Debug("attachment saved", zap.String("ref", ref))
	return ref, nil
}

func (s *DiskStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + ref
}

// Delete removes a stored file; refs escaping the upload dir are rejected
func (s *DiskStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean := path.Clean("/" + ref)
	if !strings.HasPrefix(clean, "/"+uploadDir+"/") {
		return fmt.Errorf("invalid attachment ref %q", ref)
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	s.logger.Debug("attachment deleted", zap.String("ref", ref))
	return nil
}
