package provider

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Checksum hashes file contents with the configured algorithm
type Checksum struct {
	algorithm string
}

// NewChecksum creates a checksum provider.
// Supported algorithms: crc32, md5, sha224, sha256, sha384, sha512, xxh64.
func NewChecksum(algorithm string) (*Checksum, error) {
	switch algorithm {
	case "crc32", "md5", "sha224", "sha256", "sha384", "sha512", "xxh64":
		return &Checksum{algorithm: algorithm}, nil
	}
	return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
}

// Header returns the column header text for this algorithm
func (c *Checksum) Header() string {
	switch c.algorithm {
	case "crc32":
		return "CRC32"
	case "md5":
		return "MD5"
	case "sha224":
		return "SHA-224"
	case "sha256":
		return "SHA-256"
	case "sha384":
		return "SHA-384"
	case "sha512":
		return "SHA-512"
	default:
		return "XXH64"
	}
}

// Compute streams the file through the hash and returns the hex digest
func (c *Checksum) Compute(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var h hash.Hash
	switch c.algorithm {
	case "crc32":
		h = crc32.NewIEEE()
	case "md5":
		h = md5.New()
	case "sha224":
		h = sha256.New224()
	case "sha256":
		h = sha256.New()
	case "sha384":
		h = sha512.New384()
	case "sha512":
		h = sha512.New()
	default:
		h = xxhash.New()
	}

	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
