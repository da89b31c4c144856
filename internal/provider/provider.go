// Package provider computes optional per-entry values that require
// reading file contents, such as checksums and content types. Providers
// run only when their column is selected; a failed computation renders
// as unavailable instead of failing the listing.
package provider

// Unavailable is rendered when a provider cannot produce a value
const Unavailable = "unavailable"

// Provider computes a display value for one path
type Provider interface {
	// Compute returns the value for the given path
	Compute(path string) (string, error)
}
