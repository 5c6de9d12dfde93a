// Package overlay merges a fragment directory tree onto a destination tree.
//
// Directories are merged, never replaced: existing destination content
// survives unless the fragment provides a file with the same name, in which
// case the fragment's file wins. Copied files keep their permission bits and
// modification time. The merge is not transactional; an error leaves the
// destination partially merged.
package overlay

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	oerrors "github.com/opmodel/cookie/internal/errors"
)

// Entry describes one file written by a merge.
type Entry struct {
	// Path is slash-separated and relative to the destination root.
	Path string `json:"path"`

	// Size is the number of bytes copied.
	Size int64 `json:"size"`

	// Mode is the permission bits applied to the destination file.
	Mode fs.FileMode `json:"mode"`
}

// Option configures a merge.
type Option func(*merger)

// WithRecorder registers fn to be called for every file the merge writes.
func WithRecorder(fn func(Entry)) Option {
	return func(m *merger) {
		m.record = fn
	}
}

type merger struct {
	dst    string
	record func(Entry)
}

// Merge overlays every immediate child of fragmentRoot onto destinationRoot.
// A missing fragmentRoot is a no-op.
func Merge(fragmentRoot, destinationRoot string, opts ...Option) error {
	m := &merger{dst: destinationRoot}
	for _, opt := range opts {
		opt(m)
	}

	info, err := os.Stat(fragmentRoot)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return oerrors.NewFilesystemError("stat", fragmentRoot, err)
	}
	if !info.IsDir() {
		return oerrors.NewFilesystemError("merge", fragmentRoot, errors.New("fragment is not a directory"))
	}

	entries, err := os.ReadDir(fragmentRoot)
	if err != nil {
		return oerrors.NewFilesystemError("read", fragmentRoot, err)
	}

	for _, e := range entries {
		if err := m.merge(filepath.Join(fragmentRoot, e.Name()), e.Name()); err != nil {
			return err
		}
	}
	return nil
}

// merge copies src to rel under the destination root. Symlinks are followed.
func (m *merger) merge(src, rel string) error {
	info, err := os.Stat(src)
	if err != nil {
		return oerrors.NewFilesystemError("stat", src, err)
	}

	dst := filepath.Join(m.dst, filepath.FromSlash(rel))
	switch {
	case info.IsDir():
		return m.mergeDir(src, dst, rel, info)
	case info.Mode().IsRegular():
		return m.copyFile(src, dst, rel, info)
	default:
		return oerrors.NewFilesystemError("copy", src, fmt.Errorf("unsupported file type %s", info.Mode().Type()))
	}
}

func (m *merger) mergeDir(src, dst, rel string, info fs.FileInfo) error {
	existing, err := os.Stat(dst)
	switch {
	case err == nil && !existing.IsDir():
		return oerrors.NewFilesystemError("mkdir", dst, errors.New("destination exists and is not a directory"))
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(dst, 0o755); err != nil {
			return oerrors.NewFilesystemError("mkdir", dst, err)
		}
	case err != nil:
		return oerrors.NewFilesystemError("stat", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return oerrors.NewFilesystemError("read", src, err)
	}
	for _, e := range entries {
		if err := m.merge(filepath.Join(src, e.Name()), path.Join(rel, e.Name())); err != nil {
			return err
		}
	}

	// Directory metadata is applied last so child writes don't bump the mtime.
	return copyMetadata(dst, info)
}

func (m *merger) copyFile(src, dst, rel string, info fs.FileInfo) error {
	existing, statErr := os.Stat(dst)
	if statErr == nil && existing.IsDir() {
		return oerrors.NewFilesystemError("copy", dst, errors.New("destination is a directory"))
	}

	in, err := os.Open(src)
	if err != nil {
		return oerrors.NewFilesystemError("open", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if errors.Is(err, fs.ErrPermission) && statErr == nil && existing.Mode().IsRegular() {
		// A read-only file left by an earlier merge is replaced, not rewritten.
		if rmErr := os.Remove(dst); rmErr != nil {
			return oerrors.NewFilesystemError("remove", dst, rmErr)
		}
		out, err = os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	}
	if err != nil {
		return oerrors.NewFilesystemError("create", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return oerrors.NewFilesystemError("copy", dst, err)
	}
	if err := out.Close(); err != nil {
		return oerrors.NewFilesystemError("close", dst, err)
	}

	if err := copyMetadata(dst, info); err != nil {
		return err
	}

	if m.record != nil {
		m.record(Entry{Path: rel, Size: n, Mode: info.Mode().Perm()})
	}
	return nil
}

// copyMetadata applies the permission bits and modification time of info to dst.
// The access time is left untouched.
func copyMetadata(dst string, info fs.FileInfo) error {
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return oerrors.NewFilesystemError("chmod", dst, err)
	}
	if err := os.Chtimes(dst, time.Time{}, info.ModTime()); err != nil {
		return oerrors.NewFilesystemError("chtimes", dst, err)
	}
	return nil
}
