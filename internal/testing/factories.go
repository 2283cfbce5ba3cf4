package testing

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"testing"

	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	// DummyTx is base64 of the bytes "dummy"
	DummyTx = "ZHVtbXk="
	// DummyTxHash is the lowercase hex SHA-256 of "dummy"
	DummyTxHash = "b5a2c96250612366ea272ffac6d9744aaf4b45aacd96aa7cfcb931ee3b558259"
)

// MustJSONSet uses sjson.Set to set a path in a JSON string and returns the string
// See https://github.com/tidwall/sjson
func MustJSONSet(t testing.TB, json, path string, value interface{}) string {
	json, err := sjson.Set(json, path, value)
	require.NoError(t, err)
	return json
}

// MustJSONSetRaw is MustJSONSet for a value that is already JSON
func MustJSONSetRaw(t testing.TB, json, path string, value string) string {
	json, err := sjson.SetRaw(json, path, value)
	require.NoError(t, err)
	return json
}

// MustJSONDel uses sjson.Delete to remove a path from a JSON string and returns the string
func MustJSONDel(t testing.TB, json, path string) string {
	json, err := sjson.Delete(json, path)
	require.NoError(t, err)
	return json
}

func EmptyCLIContext() *cli.Context {
	set := flag.NewFlagSet("test", 0)
	return cli.NewContext(nil, set, nil)
}

// NewTxRaw builds cosmos TxRaw bytes whose fee declares gasLimit. Body and
// signatures are opaque filler.
func NewTxRaw(gasLimit uint64) []byte {
	var fee []byte
	fee = protowire.AppendTag(fee, 2, protowire.VarintType)
	fee = protowire.AppendVarint(fee, gasLimit)

	var authInfo []byte
	authInfo = protowire.AppendTag(authInfo, 2, protowire.BytesType)
	authInfo = protowire.AppendBytes(authInfo, fee)

	var txRaw []byte
	txRaw = protowire.AppendTag(txRaw, 1, protowire.BytesType)
	txRaw = protowire.AppendBytes(txRaw, []byte("body"))
	txRaw = protowire.AppendTag(txRaw, 2, protowire.BytesType)
	txRaw = protowire.AppendBytes(txRaw, authInfo)
	txRaw = protowire.AppendTag(txRaw, 3, protowire.BytesType)
	txRaw = protowire.AppendBytes(txRaw, []byte("sig"))
	return txRaw
}

// Base64 encodes raw tx bytes the way clients submit them
func Base64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// NewEventRecord builds a system event record for an extrinsic index from a
// JSON data payload.
func NewEventRecord(t testing.TB, index uint32, section, method, data string) models.EventRecord {
	t.Helper()

	record := `{}`
	record = MustJSONSet(t, record, "phase.applyExtrinsic", index)
	record = MustJSONSet(t, record, "event.section", section)
	record = MustJSONSet(t, record, "event.method", method)
	record = MustJSONSetRaw(t, record, "event.data", data)

	var er models.EventRecord
	require.NoError(t, json.Unmarshal([]byte(record), &er))
	return er
}

// NewFinalizationEvent builds a block level event outside any extrinsic.
func NewFinalizationEvent(t testing.TB, section, method string) models.EventRecord {
	t.Helper()

	record := `{"phase":"Finalization","event":{"data":[]}}`
	record = MustJSONSet(t, record, "event.section", section)
	record = MustJSONSet(t, record, "event.method", method)

	var er models.EventRecord
	require.NoError(t, json.Unmarshal([]byte(record), &er))
	return er
}

// DispatchInfo renders a dispatch info payload with the given refTime.
func DispatchInfo(t testing.TB, refTime uint64) string {
	info := `{"class":"Normal","paysFee":"Yes"}`
	return MustJSONSet(t, info, "weight.refTime", refTime)
}

// NewExecutedEvent builds cosmos::Executed with the given gas and emitted
// events, each given as type followed by key/value pairs in plain text.
func NewExecutedEvent(t testing.TB, index uint32, gasWanted, gasUsed uint64, events ...[]string) models.EventRecord {
	t.Helper()

	data := `[]`
	data = MustJSONSet(t, data, "0", gasWanted)
	data = MustJSONSet(t, data, "1", gasUsed)
	data = MustJSONSetRaw(t, data, "2", NativeAbciEvents(t, events...))
	return NewEventRecord(t, index, "cosmos", "Executed", data)
}

// NewExtrinsicSuccessEvent builds system::ExtrinsicSuccess with refTime weight.
func NewExtrinsicSuccessEvent(t testing.TB, index uint32, refTime uint64) models.EventRecord {
	t.Helper()

	data := MustJSONSetRaw(t, `[]`, "0", DispatchInfo(t, refTime))
	return NewEventRecord(t, index, "system", "ExtrinsicSuccess", data)
}

// NewModuleFailedEvent builds system::ExtrinsicFailed carrying a module error
// in its structured JSON form.
func NewModuleFailedEvent(t testing.TB, index uint32, module uint8, code uint8, refTime uint64) models.EventRecord {
	t.Helper()

	dispatchError := `{}`
	dispatchError = MustJSONSet(t, dispatchError, "module.index", module)
	dispatchError = MustJSONSet(t, dispatchError, "module.error", hexutil.Encode([]byte{code, 0, 0, 0}))
	return NewFailedEvent(t, index, dispatchError, refTime)
}

// NewFailedEvent builds system::ExtrinsicFailed with a raw dispatch error JSON.
func NewFailedEvent(t testing.TB, index uint32, dispatchError string, refTime uint64) models.EventRecord {
	t.Helper()

	data := `[]`
	data = MustJSONSetRaw(t, data, "0", dispatchError)
	data = MustJSONSetRaw(t, data, "1", DispatchInfo(t, refTime))
	return NewEventRecord(t, index, "system", "ExtrinsicFailed", data)
}

// NativeAbciEvents renders events in the native hex form. Each event is given
// as type followed by key/value pairs.
func NativeAbciEvents(t testing.TB, events ...[]string) string {
	out := `[]`
	for i, ev := range events {
		require.True(t, len(ev)%2 == 1, "event needs a type and key/value pairs")
		obj := MustJSONSet(t, `{"attributes":[]}`, "type", hexutil.Encode([]byte(ev[0])))
		for j := 1; j+1 < len(ev); j += 2 {
			attr := `{}`
			attr = MustJSONSet(t, attr, "key", hexutil.Encode([]byte(ev[j])))
			attr = MustJSONSet(t, attr, "value", hexutil.Encode([]byte(ev[j+1])))
			obj = MustJSONSetRaw(t, obj, "attributes.-1", attr)
		}
		out = MustJSONSetRaw(t, out, jsonIndex(i), obj)
	}
	return out
}

func jsonIndex(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}
