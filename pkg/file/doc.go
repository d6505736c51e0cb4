// Package file stores uploaded files on the local filesystem or in S3.
//
// Storage is the interface both backends implement:
//
//	store, err := file.NewLocalStorage("./uploads", "/files/")
//	saved, err := store.Save(ctx, fh, "resume/Lovelace_Ada_<id>.pdf")
//	url := store.URL(saved.RelativePath)
//
// S3Storage works against AWS or any S3-compatible endpoint (MinIO, R2) and
// takes its settings from S3Config, which can be loaded with pkg/config.
//
// The package-level helpers inspect a *multipart.FileHeader without storing
// it. IsPDF sniffs the content and falls back to the extension. CheckSize
// checks the declared size. SanitizeFilename strips directory components
// from client-supplied names.
package file
