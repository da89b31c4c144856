package format

import "strconv"

// Resolver maps numeric ids to names, memoizing lookups
type Resolver interface {
	UserName(uid uint32) string
	GroupName(gid uint32) string
}

// User renders a uid in the configured ownership style
func User(uid uint32, style string, resolver Resolver) string {
	if style == "id" {
		return strconv.FormatUint(uint64(uid), 10)
	}
	return resolver.UserName(uid)
}

// Group renders a gid in the configured ownership style
func Group(gid uint32, style string, resolver Resolver) string {
	if style == "id" {
		return strconv.FormatUint(uint64(gid), 10)
	}
	return resolver.GroupName(gid)
}
