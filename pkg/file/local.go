package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps files under a base directory. Paths that resolve
// outside of it are rejected. Files are written to a temporary name and
// renamed into place, so readers never see a partial resume.
type LocalStorage struct {
	root          string // absolute
	baseURL       string
	uploadTimeout time.Duration
}

// LocalConfig configures NewLocalStorage from the environment.
type LocalConfig struct {
	Dir     string `env:"RESUME_DIR" envDefault:"./uploads"`
	BaseURL string `env:"RESUME_BASE_URL" envDefault:"/files/"`
}

type LocalOption func(*LocalStorage)

// WithLocalUploadTimeout bounds each Save call.
func WithLocalUploadTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.uploadTimeout = timeout
	}
}

// NewLocalStorage creates dir if needed. baseURL prefixes the URLs
// returned by URL.
func NewLocalStorage(dir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if dir == "" {
		return nil, ErrInvalidConfig
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToGetAbsolutePath, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Join(ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{root: root, baseURL: baseURL}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Save copies the upload to name. A name ending in a separator keeps the
// client's sanitized filename.
func (s *LocalStorage) Save(ctx context.Context, fh *multipart.FileHeader, name string) (*File, error) {
	if fh == nil {
		return nil, ErrNilFileHeader
	}
	if strings.HasSuffix(name, "/") || name == "" {
		name += SanitizeFilename(fh.Filename)
	}

	dst, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, errors.Join(ErrFailedToCreateDirectory, err)
	}

	written, err := s.write(ctx, fh, dst)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(s.root, dst)
	if err != nil {
		rel = name
	}
	return inspect(fh, written, rel, dst), nil
}

// write streams fh into a temp file next to dst and renames it.
func (s *LocalStorage) write(ctx context.Context, fh *multipart.FileHeader, dst string) (int64, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, errors.Join(ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return 0, errors.Join(ErrFailedToCreateFile, err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	n, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: src})
	if err != nil {
		cleanup()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, errors.Join(ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, errors.Join(ErrFailedToWriteFile, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, errors.Join(ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, errors.Join(ErrFailedToWriteFile, err)
	}
	return n, nil
}

// Delete removes one file. Directories are refused.
func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	case err != nil:
		return errors.Join(ErrFailedToStatPath, err)
	case info.IsDir():
		return fmt.Errorf("%w: %s", ErrIsDirectory, name)
	}

	if err := os.Remove(target); err != nil {
		return errors.Join(ErrFailedToDeleteFile, err)
	}
	return nil
}

// Exists is false for invalid names and once ctx is done.
func (s *LocalStorage) Exists(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}
	target, err := s.resolve(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(target)
	return err == nil
}

// URL prefixes name with the base URL. Absolute names are returned as is.
func (s *LocalStorage) URL(name string) string {
	name = filepath.ToSlash(filepath.Clean(name))
	if strings.HasPrefix(name, "/") {
		return name
	}
	return s.baseURL + name
}

// resolve maps name into the root, rejecting anything that escapes it.
func (s *LocalStorage) resolve(name string) (string, error) {
	target := filepath.Join(s.root, filepath.Clean(name))
	if target != s.root && !strings.HasPrefix(target, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, name)
	}
	return target, nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
