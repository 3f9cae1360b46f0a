package ledger

import (
	"encoding/hex"
	"io"
	"strconv"

	"go.dedis.ch/kyber/v4/suites"
)

// The Ed25519 suite hashes with SHA-256.
var suite suites.Suite = suites.MustFind("Ed25519")

// digest hashes the concatenation of parts and returns it hex encoded.
func digest(parts ...string) string {
	h := suite.Hash()
	for _, p := range parts {
		io.WriteString(h, p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func formatTimestamp(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}
