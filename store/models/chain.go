package models

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Header identifies a finalized native block.
type Header struct {
	Hash       string `msgpack:"hash"`
	Number     uint64 `msgpack:"number"`
	ParentHash string `msgpack:"parent_hash"`
}

// UnmarshalJSON reads a native chain_getHeader response. The block hash is not
// part of that payload and must be filled in by the caller.
func (h *Header) UnmarshalJSON(bs []byte) error {
	type header struct {
		Number     string `json:"number"`
		ParentHash string `json:"parentHash"`
	}

	var jsonHeader header
	if err := json.Unmarshal(bs, &jsonHeader); err != nil {
		return err
	}
	number, err := hexutil.DecodeUint64(jsonHeader.Number)
	if err != nil {
		return errors.Wrapf(err, "invalid header number %q", jsonHeader.Number)
	}
	h.Number = number
	h.ParentHash = jsonHeader.ParentHash
	return nil
}

// PhaseKind is the stage of block execution an event was emitted in.
type PhaseKind string

const (
	PhaseApplyExtrinsic = PhaseKind("applyExtrinsic")
	PhaseFinalization   = PhaseKind("finalization")
	PhaseInitialization = PhaseKind("initialization")
)

type Phase struct {
	Kind           PhaseKind
	ExtrinsicIndex uint32
}

// IsApplyExtrinsic reports whether the phase belongs to extrinsic index.
func (p Phase) IsApplyExtrinsic(index uint32) bool {
	return p.Kind == PhaseApplyExtrinsic && p.ExtrinsicIndex == index
}

// UnmarshalJSON accepts {"applyExtrinsic": n}, {"finalization": null} and the
// bare string forms of the unit variants.
func (p *Phase) UnmarshalJSON(bs []byte) error {
	var name string
	if err := json.Unmarshal(bs, &name); err == nil {
		p.Kind = phaseKind(name)
		p.ExtrinsicIndex = 0
		return nil
	}
	var variant map[string]json.RawMessage
	if err := json.Unmarshal(bs, &variant); err != nil {
		return errors.Wrap(err, "phase is neither a string nor an object")
	}
	if len(variant) != 1 {
		return errors.Errorf("phase must have exactly one variant, got %d", len(variant))
	}
	for k, v := range variant {
		p.Kind = phaseKind(k)
		p.ExtrinsicIndex = 0
		if p.Kind == PhaseApplyExtrinsic {
			if err := json.Unmarshal(v, &p.ExtrinsicIndex); err != nil {
				return errors.Wrap(err, "invalid applyExtrinsic index")
			}
		}
	}
	return nil
}

func (p Phase) MarshalJSON() ([]byte, error) {
	if p.Kind == PhaseApplyExtrinsic {
		return json.Marshal(map[string]uint32{string(p.Kind): p.ExtrinsicIndex})
	}
	return json.Marshal(map[string]interface{}{string(p.Kind): nil})
}

func phaseKind(s string) PhaseKind {
	if s == "" {
		return ""
	}
	switch strings.ToLower(s[:1]) + s[1:] {
	case string(PhaseApplyExtrinsic):
		return PhaseApplyExtrinsic
	case string(PhaseFinalization):
		return PhaseFinalization
	case string(PhaseInitialization):
		return PhaseInitialization
	}
	return PhaseKind(s)
}

// NativeEvent is a decoded system event. Data is kept raw since its shape
// depends on section and method.
type NativeEvent struct {
	Section string          `json:"section"`
	Method  string          `json:"method"`
	Data    json.RawMessage `json:"data"`
}

// Name returns the event in section::method form.
func (e NativeEvent) Name() string {
	return e.Section + "::" + e.Method
}

type EventRecord struct {
	Phase Phase       `json:"phase"`
	Event NativeEvent `json:"event"`
}

// NativeAbciEvent is an event as emitted by the native cosmos pallet, with
// every string field hex encoded.
type NativeAbciEvent struct {
	Type       json.RawMessage        `json:"type"`
	Attributes []NativeEventAttribute `json:"attributes"`
}

type NativeEventAttribute struct {
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
}

// SimulateResponse is the raw cosmos_simulate result. Fields stay undecoded so
// a malformed one can be reported by name.
type SimulateResponse struct {
	GasInfo NativeGasInfo     `json:"gas_info"`
	Events  []NativeAbciEvent `json:"events"`
}

type NativeGasInfo struct {
	GasWanted json.RawMessage `json:"gas_wanted"`
	GasUsed   json.RawMessage `json:"gas_used"`
}
