//go:build linux

package vfs

import (
	"os"
	"syscall"
	"time"

	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// StatTimes returns the access, modify and change times of path.
func StatTimes(path string) (domain.Timestamps, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Timestamps{}, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path)
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		mtime := info.ModTime()
		return domain.Timestamps{Atime: mtime, Mtime: mtime, Ctime: mtime}, nil
	}
	return domain.Timestamps{
		Atime: time.Unix(st.Atim.Unix()),
		Mtime: info.ModTime(),
		Ctime: time.Unix(st.Ctim.Unix()),
	}, nil
}
