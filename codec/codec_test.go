package codec_test

import (
	"strings"
	"testing"

	"github.com/celer-network/cosmos-sidecar/codec"
	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

const dummyHash = "b5a2c96250612366ea272ffac6d9744aaf4b45aacd96aa7cfcb931ee3b558259"

func TestToHashHex(t *testing.T) {
	t.Parallel()

	raw, err := codec.Decode("tx", "ZHVtbXk=", codec.Base64)
	require.NoError(t, err)
	require.Equal(t, []byte("dummy"), raw)

	h := codec.ToHashHex(raw)
	assert.Equal(t, dummyHash, h)
	assert.Len(t, h, 64)
	assert.Equal(t, h, codec.ToHashHex(raw))
	assert.Equal(t, strings.ToLower(h), h)
	assert.Equal(t, strings.ToUpper(dummyHash), codec.DisplayHash("0x"+h))
}

func TestNormalizeHash(t *testing.T) {
	t.Parallel()

	for _, in := range []string{dummyHash, strings.ToUpper(dummyHash), "0x" + dummyHash, "0X" + strings.ToUpper(dummyHash)} {
		h, err := codec.NormalizeHash(in)
		require.NoError(t, err)
		assert.Equal(t, dummyHash, h)
	}

	t.Run("rejects non hex characters", func(t *testing.T) {
		_, err := codec.NormalizeHash("zz" + dummyHash[2:])
		require.Error(t, err)
		assert.True(t, types.IsInputError(err))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := codec.NormalizeHash("abcd")
		require.Error(t, err)
		assert.True(t, types.IsInputError(err))
	})
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	// hex inputs are canonical: lowercase without a 0x marker
	inputs := map[codec.Encoding]string{
		codec.Base64: "ZHVtbXk=",
		codec.Hex:    "64756d6d79",
		codec.UTF8:   "dummy ✓",
	}
	encodings := []codec.Encoding{codec.Base64, codec.Hex, codec.UTF8}
	for from, x := range inputs {
		for _, to := range encodings {
			y, err := codec.Convert(x, from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			back, err := codec.Convert(y, to, from)
			require.NoError(t, err, "%s -> %s", to, from)
			assert.Equal(t, x, back, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestConvert_HexCanonicalizes(t *testing.T) {
	t.Parallel()

	for _, x := range []string{"ABCD", "0xabcd", "0XAbCd"} {
		b64, err := codec.Convert(x, codec.Hex, codec.Base64)
		require.NoError(t, err, x)
		back, err := codec.Convert(b64, codec.Base64, codec.Hex)
		require.NoError(t, err, x)
		assert.Equal(t, "abcd", back, x)
	}
}

func TestConvert_HexPrefix(t *testing.T) {
	t.Parallel()

	a, err := codec.Convert("0x64756d6d79", codec.Hex, codec.UTF8)
	require.NoError(t, err)
	b, err := codec.Convert("64756d6d79", codec.Hex, codec.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "dummy", a)
	assert.Equal(t, a, b)

	assert.Equal(t, "abc", codec.StripHexPrefix(codec.StripHexPrefix("0xabc")))
}

func TestConvert_Malformed(t *testing.T) {
	t.Parallel()

	_, err := codec.Convert("abc", codec.Hex, codec.UTF8)
	assert.True(t, types.IsDecodeError(err), "odd length hex")

	_, err = codec.Convert("0xzz", codec.Hex, codec.UTF8)
	assert.True(t, types.IsDecodeError(err), "invalid hex digit")

	_, err = codec.Convert("!!!", codec.Base64, codec.Hex)
	assert.True(t, types.IsDecodeError(err), "invalid base64 alphabet")

	_, err = codec.Convert("ff", codec.Hex, codec.UTF8)
	assert.True(t, types.IsDecodeError(err), "invalid utf-8")
}

func TestToNativeHex(t *testing.T) {
	t.Parallel()

	hexTx, raw, err := codec.ToNativeHex("ZHVtbXk=")
	require.NoError(t, err)
	assert.Equal(t, "0x64756d6d79", hexTx)
	assert.Equal(t, []byte("dummy"), raw)

	_, _, err = codec.ToNativeHex("not base64!")
	assert.True(t, types.IsInputError(err))
}

func TestDecodeModuleError(t *testing.T) {
	t.Parallel()

	me, err := codec.DecodeModuleError([]byte{0x03, 0x05, 0x0a, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, uint8(0x05), me.Codespace)
	assert.Equal(t, uint8(0x0a), me.Code)

	assert.True(t, codec.ModuleErrorV1.IsModuleError([]byte{0x03, 0x05, 0x0a}))
	assert.False(t, codec.ModuleErrorV1.IsModuleError([]byte{0x02}))

	_, err = codec.DecodeModuleError([]byte{0x03, 0x05})
	require.Error(t, err)
	assert.True(t, types.IsDecodeError(err))

	layout, err := codec.ModuleErrorLayoutFor("v1")
	require.NoError(t, err)
	assert.Equal(t, codec.ModuleErrorV1, layout)

	packed := layout.Pack(0x05, []byte{0x0a, 0x00, 0x00, 0x00})
	assert.Equal(t, []byte{0x03, 0x05, 0x0a, 0x00, 0x00, 0x00}, packed)
	me, err = layout.Decode(packed)
	require.NoError(t, err)
	assert.Equal(t, codec.ModuleError{Codespace: 0x05, Code: 0x0a}, me)
	assert.Equal(t, []byte{0x03, 0x07, 0x00}, layout.Pack(0x07, nil))

	_, err = codec.ModuleErrorLayoutFor("v0")
	assert.Error(t, err)
}

func newTxRaw(gasLimit uint64, payer string) []byte {
	var fee []byte
	// amount, skipped by the decoder
	fee = protowire.AppendTag(fee, 1, protowire.BytesType)
	fee = protowire.AppendBytes(fee, []byte{0x0a, 0x05, 's', 't', 'a', 'k', 'e'})
	fee = protowire.AppendTag(fee, 2, protowire.VarintType)
	fee = protowire.AppendVarint(fee, gasLimit)
	fee = protowire.AppendTag(fee, 3, protowire.BytesType)
	fee = protowire.AppendString(fee, payer)

	var authInfo []byte
	authInfo = protowire.AppendTag(authInfo, 1, protowire.BytesType)
	authInfo = protowire.AppendBytes(authInfo, []byte{0x01, 0x02})
	authInfo = protowire.AppendTag(authInfo, 2, protowire.BytesType)
	authInfo = protowire.AppendBytes(authInfo, fee)

	var txRaw []byte
	txRaw = protowire.AppendTag(txRaw, 1, protowire.BytesType)
	txRaw = protowire.AppendBytes(txRaw, []byte("body"))
	txRaw = protowire.AppendTag(txRaw, 2, protowire.BytesType)
	txRaw = protowire.AppendBytes(txRaw, authInfo)
	txRaw = protowire.AppendTag(txRaw, 3, protowire.BytesType)
	txRaw = protowire.AppendBytes(txRaw, make([]byte, 64))
	return txRaw
}

func TestDecodeTxFee(t *testing.T) {
	t.Parallel()

	fee, err := codec.DecodeTxFee(newTxRaw(200000, "cosmos1payer"))
	require.NoError(t, err)
	assert.Equal(t, uint64(200000), fee.GasLimit)
	assert.Equal(t, "cosmos1payer", fee.Payer)
	assert.Equal(t, "", fee.Granter)

	t.Run("missing auth info", func(t *testing.T) {
		var txRaw []byte
		txRaw = protowire.AppendTag(txRaw, 1, protowire.BytesType)
		txRaw = protowire.AppendBytes(txRaw, []byte("body"))
		_, err := codec.DecodeTxFee(txRaw)
		require.Error(t, err)
		assert.True(t, types.IsDecodeError(err))
	})

	t.Run("truncated bytes", func(t *testing.T) {
		raw := newTxRaw(1, "")
		_, err := codec.DecodeTxFee(raw[:len(raw)-70])
		assert.True(t, types.IsDecodeError(err))
	})
}

func TestDecodeJSONUint(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]uint64{
		`42`:        42,
		`"42"`:      42,
		`"1,000"`:   1000,
		`"0x2a"`:    42,
		`"0x0"`:     0,
		`123456789`: 123456789,
	} {
		v, err := codec.DecodeJSONUint("gas", []byte(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}

	for _, raw := range []string{``, `null`, `-1`, `"abc"`, `"0xzz"`, `{}`} {
		_, err := codec.DecodeJSONUint("gas", []byte(raw))
		require.Error(t, err, raw)
		assert.True(t, types.IsDecodeError(err), raw)
	}
}

func TestDecodeJSONBytes(t *testing.T) {
	t.Parallel()

	b, err := codec.DecodeJSONBytes("key", []byte(`"0x64756d6d79"`))
	require.NoError(t, err)
	assert.Equal(t, []byte("dummy"), b)

	b, err = codec.DecodeJSONBytes("key", []byte(`[100,117,109,109,121]`))
	require.NoError(t, err)
	assert.Equal(t, []byte("dummy"), b)

	_, err = codec.DecodeJSONBytes("key", []byte(`[256]`))
	var decodeErr *types.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "key", decodeErr.Field)

	s, err := codec.DecodeJSONText("value", []byte(`"74657374"`))
	require.NoError(t, err)
	assert.Equal(t, "test", s)
}
