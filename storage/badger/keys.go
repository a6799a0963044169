package badger

import (
	"encoding/binary"
)

// Key prefixes for different data types
const (
	productPrefix  = "product:"
	positionPrefix = "catpos:"
	positionSeq    = "catposseq"
)

// makeProductKey generates a key for a product by ID.
// Format: prefix + big-endian ID
func makeProductKey(id int) []byte {
	return appendUint64([]byte(productPrefix), uint64(id))
}

// makePositionKey generates a key for the catalog order index.
// Format: prefix + big-endian position
func makePositionKey(pos uint64) []byte {
	// Write in BigEndian order so lexicographic sort matches catalog order
	return appendUint64([]byte(positionPrefix), pos)
}

func appendUint64(prefix []byte, v uint64) []byte {
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], v)
	return buf
}
