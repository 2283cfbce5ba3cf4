package codec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodeJSONUint reads an unsigned integer that the native RPC layer may render
// as a JSON number, a decimal string or a 0x hex string.
func DecodeJSONUint(field string, raw json.RawMessage) (uint64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, types.NewDecodeErrorf(field, "missing value")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			v, err := hexutil.DecodeUint64("0x" + StripHexPrefix(s))
			if err != nil {
				return 0, types.NewDecodeError(field, err)
			}
			return v, nil
		}
		v, err := strconv.ParseUint(strings.ReplaceAll(s, ",", ""), 10, 64)
		if err != nil {
			return 0, types.NewDecodeError(field, err)
		}
		return v, nil
	}
	var v uint64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, types.NewDecodeError(field, err)
	}
	return v, nil
}

// DecodeJSONBytes reads a byte string rendered either as a hex string, with or
// without 0x, or as a JSON array of byte values.
func DecodeJSONBytes(field string, raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, types.NewDecodeErrorf(field, "missing value")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Decode(field, s, Hex)
	}
	var ints []uint64
	if err := json.Unmarshal(raw, &ints); err != nil {
		return nil, types.NewDecodeError(field, err)
	}
	b := make([]byte, len(ints))
	for i, v := range ints {
		if v > 0xff {
			return nil, types.NewDecodeErrorf(field, "element %d value %d is not a byte", i, v)
		}
		b[i] = byte(v)
	}
	return b, nil
}

// DecodeJSONText reads a hex encoded byte string and returns it as UTF-8.
func DecodeJSONText(field string, raw json.RawMessage) (string, error) {
	b, err := DecodeJSONBytes(field, raw)
	if err != nil {
		return "", err
	}
	return Encode(field, b, UTF8)
}
