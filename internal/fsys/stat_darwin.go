//go:build darwin

package fsys

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/rly0nheart/cerium/pkg/models"
)

// statPath reads the raw stat block for a path.
// With dereference set, symlinks are followed; otherwise the link itself
// is examined, broken symlinks included.
func statPath(path string, dereference bool) (*models.Metadata, error) {
	var st unix.Stat_t
	var err error
	if dereference {
		err = unix.Stat(path, &st)
	} else {
		err = unix.Lstat(path, &st)
	}
	if err != nil {
		return nil, err
	}

	return &models.Metadata{
		Ok:        true,
		Mode:      uint32(st.Mode),
		Nlink:     uint64(st.Nlink),
		UID:       st.Uid,
		GID:       st.Gid,
		Size:      st.Size,
		BlockSize: int64(st.Blksize),
		Blocks:    st.Blocks,
		Inode:     st.Ino,
		Dev:       uint64(st.Dev),
		Accessed:  time.Unix(st.Atimespec.Unix()),
		Modified:  time.Unix(st.Mtimespec.Unix()),
		Changed:   time.Unix(st.Ctimespec.Unix()),
	}, nil
}
