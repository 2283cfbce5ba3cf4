package codec

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

type Encoding string

const (
	Base64 = Encoding("base64")
	Hex    = Encoding("hex")
	UTF8   = Encoding("utf8")
)

// StripHexPrefix removes a leading 0x or 0X marker if present. It is idempotent.
func StripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Decode converts value in the given encoding to raw bytes. Hex input may carry
// a 0x marker. The field name is only used to label a DecodeError.
func Decode(field string, value string, from Encoding) ([]byte, error) {
	switch from {
	case Base64:
		b, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, types.NewDecodeError(field, err)
		}
		return b, nil
	case Hex:
		b, err := hexutil.Decode("0x" + StripHexPrefix(value))
		if err != nil {
			return nil, types.NewDecodeError(field, err)
		}
		return b, nil
	case UTF8:
		if !utf8.ValidString(value) {
			return nil, types.NewDecodeErrorf(field, "invalid utf-8 sequence")
		}
		return []byte(value), nil
	default:
		return nil, errors.Errorf("unsupported encoding %q", from)
	}
}

// Encode renders raw bytes in the given encoding. Hex output is unprefixed
// lowercase.
func Encode(field string, b []byte, to Encoding) (string, error) {
	switch to {
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Hex:
		return strings.TrimPrefix(hexutil.Encode(b), "0x"), nil
	case UTF8:
		if !utf8.Valid(b) {
			return "", types.NewDecodeErrorf(field, "bytes are not valid utf-8")
		}
		return string(b), nil
	default:
		return "", errors.Errorf("unsupported encoding %q", to)
	}
}

// Convert re-encodes value from one encoding to another. Hex output is always
// unprefixed lowercase, so a hex value only survives a round trip unchanged
// when it is already in that canonical form: "0xABCD" comes back as "abcd".
func Convert(value string, from Encoding, to Encoding) (string, error) {
	return ConvertField("value", value, from, to)
}

// ConvertField is Convert with a field label for the returned DecodeError.
func ConvertField(field string, value string, from Encoding, to Encoding) (string, error) {
	b, err := Decode(field, value, from)
	if err != nil {
		return "", err
	}
	return Encode(field, b, to)
}

// ToNativeHex converts client base64 transaction bytes to the 0x prefixed hex
// wire form expected by the native chain. Invalid base64 is an InputError.
func ToNativeHex(txBytesBase64 string) (string, []byte, error) {
	raw, err := base64.StdEncoding.DecodeString(txBytesBase64)
	if err != nil {
		return "", nil, types.NewInputError("tx_bytes", err)
	}
	return hexutil.Encode(raw), raw, nil
}
