// Package xxhash fingerprints artifact content using cespare/xxhash.
package xxhash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the big-endian hex encoding of the xxHash64 digest of data.
func Sum(data []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(data))
	return hex.EncodeToString(b)
}
