package storage

import "errors"

var (
	// ErrPathOutsideRoot is returned when a requested path escapes the media root
	ErrPathOutsideRoot = errors.New("path escapes media root")

	// ErrFileNotFound is returned when a resolved path is missing or not a regular file
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedType is returned for uploads that are not JPEG, PNG or WebP
	ErrUnsupportedType = errors.New("unsupported content type")

	// ErrEmptyUpload is returned for zero-byte uploads
	ErrEmptyUpload = errors.New("empty file")

	// ErrUploadTooLarge is returned when an upload exceeds the configured limit
	ErrUploadTooLarge = errors.New("file too large")

	// ErrInvalidEventSlug is returned when a slug would not be a safe directory name
	ErrInvalidEventSlug = errors.New("invalid event slug")
)
