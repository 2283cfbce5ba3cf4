package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/pkg/errors"
)

const hashHexLen = sha256.Size * 2

// ToHashHex returns the lowercase hex SHA-256 digest of the raw, unprefixed
// transaction bytes. This is the form used for store keys.
func ToHashHex(rawTx []byte) string {
	sum := sha256.Sum256(rawTx)
	return hex.EncodeToString(sum[:])
}

// DisplayHash returns the Cosmos-facing form of a hash: uppercase, no prefix.
func DisplayHash(hash string) string {
	return strings.ToUpper(StripHexPrefix(hash))
}

// NormalizeHash turns a client supplied hash into the store key form. It
// accepts either case and an optional 0x marker.
func NormalizeHash(hash string) (string, error) {
	h := strings.ToLower(StripHexPrefix(strings.TrimSpace(hash)))
	if len(h) != hashHexLen {
		return "", types.NewInputError("hash", errors.Errorf("expected %d hex characters, got %d", hashHexLen, len(h)))
	}
	if _, err := hex.DecodeString(h); err != nil {
		return "", types.NewInputError("hash", err)
	}
	return h, nil
}

// NormalizeIdentifier strips the hex marker from an identifier returned by the
// native chain and lowercases it. No length check is applied.
func NormalizeIdentifier(id string) string {
	return strings.ToLower(StripHexPrefix(id))
}
