package file

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

const (
	MIMEPDF         = "application/pdf"
	mimeOctetStream = "application/octet-stream"

	sniffLen = 512
)

// File describes an upload after it has been stored.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	Extension    string
	AbsolutePath string // empty for remote backends
	RelativePath string // key passed to URL and Delete
}

// Storage holds uploaded resumes. LocalStorage and S3Storage implement it.
type Storage interface {
	Save(ctx context.Context, fh *multipart.FileHeader, path string) (*File, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) bool
	URL(path string) string
}

// DetectContentType sniffs the first 512 bytes of the upload and returns
// the media type without parameters.
func DetectContentType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	mediaType, _, _ := strings.Cut(http.DetectContentType(head[:n]), ";")
	return mediaType, nil
}

// Extension returns the lower-cased extension of the client filename,
// including the dot.
func Extension(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(fh.Filename))
}

// IsPDF reports whether the upload is a PDF. The extension is only
// consulted when the content cannot be read.
func IsPDF(fh *multipart.FileHeader) bool {
	if fh == nil {
		return false
	}
	if mediaType, err := DetectContentType(fh); err == nil {
		return mediaType == MIMEPDF
	}
	return Extension(fh) == ".pdf"
}

// CheckSize rejects uploads whose declared size exceeds maxBytes.
func CheckSize(fh *multipart.FileHeader, maxBytes int64) error {
	if fh == nil {
		return ErrNilFileHeader
	}
	if fh.Size > maxBytes {
		return fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, fh.Size, maxBytes)
	}
	return nil
}

// SanitizeFilename strips directory components and NUL bytes from a
// client-supplied name. Names that reduce to nothing become "unnamed".
//
//	file.SanitizeFilename("../../../etc/passwd")   // "passwd"
//	file.SanitizeFilename("C:\\Users\\ada\\cv.pdf") // "cv.pdf"
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, "\x00", "")

	switch name {
	case "", ".", "..", "/":
		return "unnamed"
	}
	return name
}

// inspect builds the metadata returned by Save.
func inspect(fh *multipart.FileHeader, size int64, rel, abs string) *File {
	mediaType, err := DetectContentType(fh)
	if err != nil {
		mediaType = mimeOctetStream
	}
	return &File{
		Filename:     SanitizeFilename(fh.Filename),
		Size:         size,
		MIMEType:     mediaType,
		Extension:    Extension(fh),
		AbsolutePath: abs,
		RelativePath: rel,
	}
}
