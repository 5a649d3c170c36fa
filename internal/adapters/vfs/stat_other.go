//go:build !linux

package vfs

import (
	"os"

	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// StatTimes returns the times of path. Only the modification time is portable,
// so it is used for all three.
func StatTimes(path string) (domain.Timestamps, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Timestamps{}, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path)
	}
	mtime := info.ModTime()
	return domain.Timestamps{Atime: mtime, Mtime: mtime, Ctime: mtime}, nil
}
