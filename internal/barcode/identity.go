package barcode

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"strconv"
)

// identityVersion prefixes the hashed encoding. Bump it whenever the
// encoding changes.
const identityVersion = "barcode-id/v1"

// HashLength is the length of a UniqueHash result.
const HashLength = sha256.Size * 2

// UniqueHash returns a stable identity for the barcode's content: 64
// lowercase hex characters.
//
// Two results of the same symbology with equal payload, add-on and
// composite data hash equally regardless of where they were seen, so one
// physical code keeps its identity from frame to frame. Any difference in
// those fields yields a different hash.
func UniqueHash(b Barcode) string {
	h := sha256.New()
	writeField(h, []byte(identityVersion))
	writeField(h, []byte(symbologyKey(b.Symbology)))
	writeField(h, b.Payload())
	writeField(h, []byte(b.AddOnData))
	writeField(h, []byte(b.CompositeData))
	return hex.EncodeToString(h.Sum(nil))
}

// UniqueHash is the method form of the package-level function.
func (b Barcode) UniqueHash() string { return UniqueHash(b) }

// writeField appends a length-prefixed field, so field boundaries cannot
// shift between inputs.
func writeField(w io.Writer, p []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(p)))
	_, _ = w.Write(n[:])
	_, _ = w.Write(p)
}

func symbologyKey(s Symbology) string {
	if s.Valid() {
		return s.String()
	}
	return "#" + strconv.Itoa(int(s))
}
