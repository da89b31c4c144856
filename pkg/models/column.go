package models

// Column identifies a renderable metadata column in list and tree output
type Column int

const (
	ColContentType Column = iota
	ColChecksum
	ColXattr
	ColACL
	ColContext
	ColMountpoint
	ColPermissions
	ColHardLinks
	ColUser
	ColGroup
	ColBlocks
	ColBlockSize
	ColCreated
	ColAccessed
	ColModified
	ColSize
	ColInode
	ColName
)

// Header returns the column header text.
// The checksum header is generic here; renderers substitute the algorithm name.
func (c Column) Header() string {
	switch c {
	case ColContentType:
		return "Type"
	case ColChecksum:
		return "Checksum"
	case ColXattr:
		return "Xattr"
	case ColACL:
		return "ACL"
	case ColContext:
		return "Context"
	case ColMountpoint:
		return "Mountpoint"
	case ColPermissions:
		return "Permissions"
	case ColHardLinks:
		return "HardLinks"
	case ColUser:
		return "User"
	case ColGroup:
		return "Group"
	case ColBlocks:
		return "Blocks"
	case ColBlockSize:
		return "Block Size"
	case ColCreated:
		return "Created"
	case ColAccessed:
		return "Accessed"
	case ColModified:
		return "Modified"
	case ColSize:
		return "Size"
	case ColInode:
		return "inode"
	case ColName:
		return "Name"
	}
	return ""
}

// RightAligned reports whether the column pads on the left.
// Numeric and date columns align right, everything else left.
func (c Column) RightAligned() bool {
	switch c {
	case ColSize, ColModified, ColCreated, ColAccessed,
		ColInode, ColHardLinks, ColBlocks, ColBlockSize:
		return true
	}
	return false
}
