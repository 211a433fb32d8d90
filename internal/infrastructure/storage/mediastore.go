// Package storage keeps uploaded media on the local filesystem under the
// configured media root:
//
//	<root>/events/<slug>/uploads/<YYYYMMDD_HHMMSS>_<name>
//	<root>/events/<slug>/processed/...
//
// Root-level uploads/ and processed/ directories from older layouts are
// still served and swept.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

const (
	URLPrefix = "/media/"

	eventsDir    = "events"
	uploadsDir   = "uploads"
	processedDir = "processed"
)

// RootProvider yields the current media root. It is read on every call so
// that a settings change takes effect immediately.
type RootProvider interface {
	MediaRoot(ctx context.Context) string
}

// MediaStore reads and writes media files below the media root.
type MediaStore struct {
	roots     RootProvider
	retention time.Duration
	clock     biztime.Clock
	logger    logger.Interface
}

// NewMediaStore creates a MediaStore. Files older than retention are removed
// by CleanupOldFiles.
func NewMediaStore(roots RootProvider, retention time.Duration, logger logger.Interface) *MediaStore {
	return &MediaStore{
		roots:     roots,
		retention: retention,
		clock:     biztime.NowUTC,
		logger:    logger,
	}
}

// WithClock replaces the time source; used by tests.
func (s *MediaStore) WithClock(clock biztime.Clock) *MediaStore {
	s.clock = clock
	return s
}

// Root returns the absolute media root.
func (s *MediaStore) Root(ctx context.Context) (string, error) {
	root, err := filepath.Abs(s.roots.MediaRoot(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to resolve media root: %w", err)
	}
	return root, nil
}

func (s *MediaStore) eventDir(ctx context.Context, eventSlug, kind string) (string, error) {
	if !event.IsValidSlug(eventSlug) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEventSlug, eventSlug)
	}
	root, err := s.Root(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, eventsDir, eventSlug, kind), nil
}

// SaveUpload stores data as <stamp>_<basename(filename)> in the event's
// uploads directory and returns the absolute path.
func (s *MediaStore) SaveUpload(ctx context.Context, data []byte, filename, eventSlug string) (string, error) {
	return s.saveStamped(ctx, data, filename, eventSlug, uploadsDir)
}

// SaveProcessed stores derived output in the event's processed directory.
func (s *MediaStore) SaveProcessed(ctx context.Context, data []byte, filename, eventSlug string) (string, error) {
	return s.saveStamped(ctx, data, filename, eventSlug, processedDir)
}

func (s *MediaStore) saveStamped(ctx context.Context, data []byte, filename, eventSlug, kind string) (string, error) {
	dir, err := s.eventDir(ctx, eventSlug, kind)
	if err != nil {
		return "", err
	}

	name := biztime.FileStamp(s.clock()) + "_" + safeBase(filename)
	path := filepath.Join(dir, name)
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}

	s.logger.Infow("media saved", "path", path, "size", len(data))
	return path, nil
}

func safeBase(filename string) string {
	name := filepath.Base(filepath.FromSlash(strings.ReplaceAll(filename, `\`, "/")))
	if name == "." || name == string(filepath.Separator) || name == ".." {
		return DefaultFilename
	}
	return name
}

// writeFileAtomic writes to a temp file in the target directory, fsyncs and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0640); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

// PathToURL maps a stored file path to its /media/ URL. Paths outside the
// current root are rebuilt from their "events" segment, else their
// "uploads" segment, else the bare file name. Each segment is
// percent-escaped, so names containing '#', '?' or '%' stay addressable.
func (s *MediaStore) PathToURL(ctx context.Context, path string) string {
	slashed := filepath.ToSlash(path)

	if root, err := s.Root(ctx); err == nil {
		if abs, err := filepath.Abs(path); err == nil {
			if rel, err := filepath.Rel(root, abs); err == nil && isInside(rel) {
				return mediaURL(strings.Split(filepath.ToSlash(rel), "/"))
			}
		}
	}

	parts := strings.Split(slashed, "/")
	for _, anchor := range []string{eventsDir, uploadsDir} {
		for i, part := range parts {
			if part == anchor {
				return mediaURL(parts[i:])
			}
		}
	}
	return mediaURL(parts[len(parts)-1:])
}

func mediaURL(segments []string) string {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	return URLPrefix + strings.Join(escaped, "/")
}

func isInside(rel string) bool {
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// Resolve maps a path relative to the media root onto the filesystem.
// It fails with ErrPathOutsideRoot when the cleaned path (or its symlink
// target) leaves the root and ErrFileNotFound when it is not a regular file.
func (s *MediaStore) Resolve(ctx context.Context, rel string) (string, error) {
	root, err := s.Root(ctx)
	if err != nil {
		return "", err
	}

	target := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
	within, err := filepath.Rel(root, target)
	if err != nil {
		return "", ErrPathOutsideRoot
	}
	if within == "." {
		return "", ErrFileNotFound
	}
	if !isInside(within) {
		return "", ErrPathOutsideRoot
	}

	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrFileNotFound
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", ErrFileNotFound
	}
	realTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		return "", ErrFileNotFound
	}
	if within, err := filepath.Rel(realRoot, realTarget); err != nil || !isInside(within) {
		return "", ErrPathOutsideRoot
	}

	return target, nil
}

// sweepDirs lists every uploads/ and processed/ directory, per event and
// legacy root-level.
func (s *MediaStore) sweepDirs(root string) []string {
	dirs := []string{
		filepath.Join(root, uploadsDir),
		filepath.Join(root, processedDir),
	}

	entries, err := os.ReadDir(filepath.Join(root, eventsDir))
	if err != nil {
		return dirs
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dirs = append(dirs,
			filepath.Join(root, eventsDir, e.Name(), uploadsDir),
			filepath.Join(root, eventsDir, e.Name(), processedDir),
		)
	}
	return dirs
}

// CleanupOldFiles deletes regular files whose modification time is older
// than the retention window and returns how many were removed.
func (s *MediaStore) CleanupOldFiles(ctx context.Context) (int, error) {
	root, err := s.Root(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.clock().Add(-s.retention)
	deleted := 0

	for _, dir := range s.sweepDirs(root) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return deleted, fmt.Errorf("failed to read %s: %w", dir, err)
		}

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return deleted, err
			}
			if !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				s.logger.Warnw("failed to delete expired file", "path", path, "error", err)
				continue
			}
			deleted++
			s.logger.Infow("deleted expired file", "path", path)
		}
	}

	return deleted, nil
}

// ListEventPhotos returns the URLs of image files in the event's uploads
// directory, most recently modified first.
func (s *MediaStore) ListEventPhotos(ctx context.Context, eventSlug string) ([]string, error) {
	dir, err := s.eventDir(ctx, eventSlug, uploadsDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	type photo struct {
		path  string
		mtime time.Time
	}
	photos := make([]photo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !HasImageExtension(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		photos = append(photos, photo{path: filepath.Join(dir, entry.Name()), mtime: info.ModTime()})
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].mtime.After(photos[j].mtime)
	})

	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		urls = append(urls, s.PathToURL(ctx, p.path))
	}
	return urls, nil
}
