package file

import "errors"

// Upload inspection.
var (
	ErrNilFileHeader    = errors.New("file: nil file header")
	ErrFileTooLarge     = errors.New("file: too large")
	ErrFailedToOpenFile = errors.New("file: cannot open upload")
	ErrFailedToReadFile = errors.New("file: cannot read upload")
)

// Storage backends. ErrFileNotFound and ErrInvalidPath are shared by both.
var (
	ErrInvalidPath  = errors.New("file: invalid path")
	ErrFileNotFound = errors.New("file: not found")

	ErrIsDirectory             = errors.New("file: path is a directory")
	ErrFailedToWriteFile       = errors.New("file: write failed")
	ErrFailedToCreateFile      = errors.New("file: create failed")
	ErrFailedToDeleteFile      = errors.New("file: delete failed")
	ErrFailedToCreateDirectory = errors.New("file: mkdir failed")
	ErrFailedToStatPath        = errors.New("file: stat failed")
	ErrFailedToGetAbsolutePath = errors.New("file: cannot resolve base directory")
)

// S3.
var (
	ErrInvalidConfig      = errors.New("file: S3 bucket and region are required")
	ErrFailedToLoadConfig = errors.New("file: cannot load AWS config")

	ErrBucketNotFound     = errors.New("file: bucket not found")
	ErrAccessDenied       = errors.New("file: access denied")
	ErrRequestTimeout     = errors.New("file: S3 request timed out")
	ErrServiceUnavailable = errors.New("file: S3 unavailable")
	ErrOperationTimeout   = errors.New("file: operation timed out")
	ErrOperationCanceled  = errors.New("file: operation canceled")
)
