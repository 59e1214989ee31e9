// Package hash fingerprints component source files. The digest is the
// staleness oracle: a record whose stored digest no longer matches the
// current source is outdated.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// Prefix marks the digest algorithm in stored hashes.
const Prefix = "sha256:"

// Result is the outcome of fingerprinting one file.
type Result struct {
	Digest string
	Exists bool
}

// Component hashes the raw bytes of the file at absPath. An unreadable file
// (including not-found) is valid input meaning "treat as stale": it yields
// Exists=false with an empty digest and no error.
func Component(absPath string) Result {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return Result{Digest: "", Exists: false}
	}
	sum := sha256.Sum256(content)
	return Result{
		Digest: Prefix + hex.EncodeToString(sum[:]),
		Exists: true,
	}
}

// Bytes hashes in-memory content with the same encoding as Component.
func Bytes(content []byte) string {
	sum := sha256.Sum256(content)
	return fmt.Sprintf("%s%s", Prefix, hex.EncodeToString(sum[:]))
}
