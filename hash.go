package glotlint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
)

// Fingerprint computes a stable SHA-256 fingerprint of a check request:
// the source forms, the translation candidates in index order, and the
// locale slug. Identical inputs always produce identical fingerprints, so
// the fingerprint is usable as a report cache key.
func Fingerprint(singular string, plural *string, translations map[int]string, localeSlug string) string {
	h := sha256.New()
	writeString := func(s string) {
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(s)))
		h.Write(lenBuf[:])
		h.Write([]byte(s))
	}

	writeString(localeSlug)
	writeString(singular)
	if plural != nil {
		writeString(*plural)
	} else {
		h.Write([]byte{0})
	}

	indices := make([]int, 0, len(translations))
	for i := range translations {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		var idxBuf [8]byte
		binary.BigEndian.PutUint64(idxBuf[:], uint64(i))
		h.Write(idxBuf[:])
		writeString(translations[i])
	}

	return hex.EncodeToString(h.Sum(nil))
}
