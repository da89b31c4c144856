package models

import "time"

// Presence is the tri-state result of a metadata probe that may never run
type Presence int

const (
	PresenceUnknown Presence = iota // probe not requested or failed
	PresenceNo
	PresenceYes
)

// Metadata holds the stat block and optional probes for one entry.
// The stat fields are either all populated (Ok true) or all zero; a failed
// stat never leaves a partially filled record.
type Metadata struct {
	Ok bool // stat block populated

	Mode      uint32 // raw st_mode including file type bits
	Nlink     uint64 // hard link count
	UID       uint32
	GID       uint32
	Size      int64
	BlockSize int64
	Blocks    int64
	Inode     uint64
	Dev       uint64

	Accessed time.Time
	Modified time.Time
	Changed  time.Time // st_ctime, used as the creation date

	// Independently fetched probes
	Xattr   Presence
	ACL     Presence
	Mounted Presence // entry is a mount point
	Context string   // SELinux security context, empty when unavailable
}
