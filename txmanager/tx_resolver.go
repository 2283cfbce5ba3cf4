package txmanager

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"

	"github.com/celer-network/cosmos-sidecar/client"
	"github.com/celer-network/cosmos-sidecar/codec"
	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/types"

	"github.com/pkg/errors"
)

const (
	// undefinedCodespace and undefinedCode mirror cosmos-sdk's ErrUnknownRequest
	// family for failures that carry no module error.
	undefinedCodespace = "undefined"
	undefinedCode      = 1
)

// TxResolver turns the events of a finalized block into the stored result of
// one of its transactions.
//
// Resolution depends only on the block's events and the raw transaction, so
// resolving the same (header, index) twice writes the same record.
type TxResolver interface {
	ResolveResult(
		ctx context.Context,
		header *models.Header,
		extrinsicIndex uint32,
		rawTx []byte,
	) (*models.ResultRecord, error)
}

type txResolver struct {
	client   client.Client
	store    esStore.Store
	config   *types.Config
	logger   types.Logger
	protocol EventProtocol
	layout   codec.ModuleErrorLayout
}

var _ TxResolver = (*txResolver)(nil)

// NewTxResolver returns a TxResolver for the configured event protocol and
// module error ABI.
func NewTxResolver(
	nativeClient client.Client,
	store esStore.Store,
	config *types.Config,
) (TxResolver, error) {
	protocol, err := EventProtocolFor(config.EventProtocol)
	if err != nil {
		return nil, err
	}
	layout, err := codec.ModuleErrorLayoutFor(config.ModuleErrorABI)
	if err != nil {
		return nil, err
	}
	return &txResolver{
		client:   nativeClient,
		store:    store,
		config:   config,
		logger:   config.Logger,
		protocol: protocol,
		layout:   layout,
	}, nil
}

type txOutcome struct {
	code      uint32
	codespace string
	log       string

	gasWanted    uint64
	hasGasWanted bool
	gasUsed      uint64

	events []models.Event
}

func (tr *txResolver) ResolveResult(
	ctx context.Context,
	header *models.Header,
	extrinsicIndex uint32,
	rawTx []byte,
) (record *models.ResultRecord, err error) {
	if header == nil {
		return nil, errors.New("cannot resolve a result without a block header")
	}
	hash := codec.ToHashHex(rawTx)
	defer WrapIfError(&err, "resolving tx %s at block %d", hash, header.Number)

	fee, feeErr := tr.client.DecodeTxFeeMetadata(rawTx)
	if feeErr == nil && fee == nil {
		feeErr = types.NewDecodeErrorf("fee", "native client returned no fee metadata")
	}
	if feeErr != nil {
		tr.logger.Warnw("Could not decode fee metadata", "hash", hash, "err", feeErr)
	}

	eventRecords, err := tr.client.EventsAt(ctx, header.Hash)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch events of block %s", header.Hash)
	}

	var terminal []models.NativeEvent
	for _, er := range eventRecords {
		if er.Phase.IsApplyExtrinsic(extrinsicIndex) && tr.protocol.IsTerminal(er.Event.Name()) {
			terminal = append(terminal, er.Event)
		}
	}
	if len(terminal) != 1 {
		inconsistency := &types.ProtocolInconsistencyError{
			BlockHash:      header.Hash,
			BlockNumber:    header.Number,
			ExtrinsicIndex: extrinsicIndex,
			TerminalEvents: len(terminal),
		}
		tr.logger.Errorw("Native event stream does not match the event protocol",
			"hash", hash,
			"protocol", tr.protocol.Version,
			"blockHash", header.Hash,
			"blockNumber", header.Number,
			"extrinsicIndex", extrinsicIndex,
			"terminalEvents", len(terminal),
		)
		return nil, inconsistency
	}

	outcome, err := tr.classify(terminal[0])
	if err != nil {
		return nil, err
	}
	if !outcome.hasGasWanted {
		if feeErr != nil {
			return nil, feeErr
		}
		outcome.gasWanted = fee.GasLimit
	}

	txBase64 := base64.StdEncoding.EncodeToString(rawTx)
	origin, err := tr.store.GetOrigin(hash)
	if err == nil {
		txBase64 = origin.Tx
	} else if errors.Is(err, esStore.ErrNotFound) {
		tr.logger.Debugw("No origin record, using raw tx bytes", "hash", hash)
	} else {
		return nil, errors.Wrap(err, "could not read origin record")
	}

	record = &models.ResultRecord{
		Hash:   codec.DisplayHash(hash),
		Height: strconv.FormatUint(header.Number, 10),
		Index:  extrinsicIndex,
		TxResult: models.TxResult{
			Code:      outcome.code,
			Data:      "",
			Log:       outcome.log,
			Info:      "",
			GasWanted: strconv.FormatUint(outcome.gasWanted, 10),
			GasUsed:   strconv.FormatUint(outcome.gasUsed, 10),
			Events:    outcome.events,
			Codespace: outcome.codespace,
		},
		Tx: txBase64,
	}
	if err := tr.store.PutResult(hash, record); err != nil {
		return nil, errors.Wrap(err, "could not save result record")
	}

	tr.logger.Infow("Resolved transaction result",
		"hash", hash,
		"height", header.Number,
		"index", extrinsicIndex,
		"code", outcome.code,
		"codespace", outcome.codespace,
		"gasUsed", outcome.gasUsed,
	)
	return record, nil
}

func (tr *txResolver) classify(event models.NativeEvent) (*txOutcome, error) {
	name := event.Name()
	var data []json.RawMessage
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return nil, types.NewDecodeError(name+".data", err)
	}
	if name == tr.protocol.SuccessEvent {
		return tr.decodeSuccess(name, data)
	}
	return tr.decodeFailure(name, data)
}

func (tr *txResolver) decodeSuccess(name string, data []json.RawMessage) (*txOutcome, error) {
	outcome := &txOutcome{events: []models.Event{}}
	switch tr.protocol.SuccessPayload {
	case SuccessDispatchInfo:
		if len(data) < 1 {
			return nil, types.NewDecodeErrorf(name+".data", "expected [dispatchInfo], got %d elements", len(data))
		}
		gasUsed, err := decodeWeight(name+".data[0]", data[0])
		if err != nil {
			return nil, err
		}
		outcome.gasUsed = gasUsed
	case SuccessGasAndEvents:
		if len(data) < 2 {
			return nil, types.NewDecodeErrorf(name+".data", "expected [gasWanted, gasUsed, events], got %d elements", len(data))
		}
		gasWanted, err := codec.DecodeJSONUint(name+".data[0]", data[0])
		if err != nil {
			return nil, err
		}
		gasUsed, err := codec.DecodeJSONUint(name+".data[1]", data[1])
		if err != nil {
			return nil, err
		}
		outcome.gasWanted, outcome.hasGasWanted, outcome.gasUsed = gasWanted, true, gasUsed
		if len(data) > 2 {
			var nativeEvents []models.NativeAbciEvent
			if err := json.Unmarshal(data[2], &nativeEvents); err != nil {
				return nil, types.NewDecodeError(name+".data[2]", err)
			}
			events, err := translateEvents(name+".data[2]", nativeEvents)
			if err != nil {
				return nil, err
			}
			outcome.events = events
		}
	default:
		return nil, errors.Errorf("event protocol %s has unknown success payload %q", tr.protocol.Version, tr.protocol.SuccessPayload)
	}
	return outcome, nil
}

func (tr *txResolver) decodeFailure(name string, data []json.RawMessage) (*txOutcome, error) {
	if len(data) < 2 {
		return nil, types.NewDecodeErrorf(name+".data", "expected [dispatchError, dispatchInfo], got %d elements", len(data))
	}
	gasUsed, err := decodeWeight(name+".data[1]", data[1])
	if err != nil {
		return nil, err
	}
	outcome := &txOutcome{
		code:      undefinedCode,
		codespace: undefinedCodespace,
		log:       "extrinsic failed: " + compactJSON(data[0]),
		gasUsed:   gasUsed,
		events:    []models.Event{},
	}

	payload, err := tr.dispatchErrorBytes(name+".data[0]", data[0])
	if err != nil {
		return nil, err
	}
	if payload == nil || !tr.layout.IsModuleError(payload) {
		return outcome, nil
	}
	moduleError, err := tr.layout.Decode(payload)
	if err != nil {
		return nil, err
	}
	outcome.code = uint32(moduleError.Code)
	outcome.codespace = tr.codespaceName(moduleError.Codespace)
	return outcome, nil
}

// dispatchErrorBytes reduces a dispatch error to its packed form. It returns
// nil for variants that cannot carry a module error.
func (tr *txResolver) dispatchErrorBytes(field string, raw json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if codec.StripHexPrefix(s) != s {
			return codec.Decode(field, s, codec.Hex)
		}
		if b, err := codec.Decode(field, s, codec.Hex); err == nil && len(b) > 0 {
			return b, nil
		}
		// unit variant such as "BadOrigin"
		return nil, nil
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(raw, &variant); err != nil {
		return nil, types.NewDecodeError(field, err)
	}
	moduleRaw, ok := variant["module"]
	if !ok {
		moduleRaw, ok = variant["Module"]
	}
	if !ok {
		return nil, nil
	}

	var module struct {
		Index json.RawMessage `json:"index"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(moduleRaw, &module); err != nil {
		return nil, types.NewDecodeError(field+".module", err)
	}
	index, err := codec.DecodeJSONUint(field+".module.index", module.Index)
	if err != nil {
		return nil, err
	}
	if index > 0xff {
		return nil, types.NewDecodeErrorf(field+".module.index", "module index %d is not a byte", index)
	}

	var errBytes []byte
	var code uint64
	if err := json.Unmarshal(module.Error, &code); err == nil {
		// older runtimes report the error as a single u8
		if code > 0xff {
			return nil, types.NewDecodeErrorf(field+".module.error", "error %d is not a byte", code)
		}
		errBytes = []byte{byte(code)}
	} else {
		errBytes, err = codec.DecodeJSONBytes(field+".module.error", module.Error)
		if err != nil {
			return nil, err
		}
	}
	if len(errBytes) == 0 {
		return nil, types.NewDecodeErrorf(field+".module.error", "empty error bytes")
	}
	return tr.layout.Pack(uint8(index), errBytes), nil
}

func (tr *txResolver) codespaceName(index uint8) string {
	if name, ok := tr.config.Codespaces[index]; ok {
		return name
	}
	return strconv.Itoa(int(index))
}

// decodeWeight reads the refTime of a dispatch info. Runtimes before weight v2
// report the weight as a bare integer.
func decodeWeight(field string, raw json.RawMessage) (uint64, error) {
	var info struct {
		Weight json.RawMessage `json:"weight"`
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return 0, types.NewDecodeError(field, err)
	}
	if len(info.Weight) == 0 {
		return 0, types.NewDecodeErrorf(field+".weight", "missing value")
	}

	var weight struct {
		RefTime      json.RawMessage `json:"refTime"`
		RefTimeSnake json.RawMessage `json:"ref_time"`
	}
	if err := json.Unmarshal(info.Weight, &weight); err != nil {
		return codec.DecodeJSONUint(field+".weight", info.Weight)
	}
	refTime := weight.RefTime
	if len(refTime) == 0 {
		refTime = weight.RefTimeSnake
	}
	return codec.DecodeJSONUint(field+".weight.refTime", refTime)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
