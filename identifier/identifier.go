// Package identifier derives deterministic identifiers for content records
// that arrive without one, so a record keeps the same identity on every load.
package identifier

import (
	"encoding/base32"
	"hash/fnv"
)

// New hashes the tokens into a short, stable, url-safe identifier. The
// tokens are separated by a unit separator byte so ("ab","c") and
// ("a","bc") hash differently.
func New(tokens ...string) string {
	h := fnv.New64()
	for i, t := range tokens {
		if i > 0 {
			h.Write([]byte{0x1f})
		}
		h.Write([]byte(t))
	}
	sum := h.Sum(nil)

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum)
}
