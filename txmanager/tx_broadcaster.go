package txmanager

import (
	"context"

	"github.com/celer-network/cosmos-sidecar/client"
	"github.com/celer-network/cosmos-sidecar/codec"
	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/types"

	"github.com/pkg/errors"
)

// TxBroadcaster hands client transactions to the native chain exactly once
// and remembers them under their hash until the result is resolved.
//
// This does not guarantee inclusion. Height, gas and logs are unknown when
// the ack is returned and are only available through search once the
// TxResolver has seen the transaction in a finalized block.
type TxBroadcaster interface {
	BroadcastTx(ctx context.Context, txBytesBase64 string) (*models.BroadcastAck, error)
}

type txBroadcaster struct {
	client client.Client
	store  esStore.Store
	config *types.Config
	logger types.Logger
}

var _ TxBroadcaster = (*txBroadcaster)(nil)

// NewTxBroadcaster returns a new concrete TxBroadcaster
func NewTxBroadcaster(
	nativeClient client.Client,
	store esStore.Store,
	config *types.Config) TxBroadcaster {
	return &txBroadcaster{
		client: nativeClient,
		store:  store,
		config: config,
		logger: config.Logger,
	}
}

func (tb *txBroadcaster) BroadcastTx(ctx context.Context, txBytesBase64 string) (*models.BroadcastAck, error) {
	hexTx, rawTx, err := codec.ToNativeHex(txBytesBase64)
	if err != nil {
		return nil, err
	}
	computed := codec.ToHashHex(rawTx)

	identifier, err := tb.client.Submit(ctx, hexTx)
	if err != nil {
		tb.logger.Warnw("Native chain rejected transaction", "hash", computed, "err", err)
		return nil, types.NewSubmissionError(err)
	}
	native := codec.NormalizeIdentifier(identifier)

	hash, err := tb.storageKey(computed, native)
	if err != nil {
		return nil, err
	}
	tb.logger.Debugw("Transaction submitted", "hash", hash, "nativeID", native)

	origin := &models.OriginRecord{Hash: hash, Tx: txBytesBase64}
	if err := tb.store.PutOrigin(hash, origin); err != nil {
		return nil, errors.Wrapf(err, "could not save origin record for tx %s", hash)
	}

	return &models.BroadcastAck{
		Height:    "0",
		TxHash:    codec.DisplayHash(hash),
		Codespace: "",
		Code:      0,
		Data:      "",
		RawLog:    "",
		Logs:      []models.MessageLog{},
		Info:      "",
		GasWanted: "0",
		GasUsed:   "0",
		Timestamp: "",
		Events:    []models.Event{},
	}, nil
}

func (tb *txBroadcaster) storageKey(computed string, native string) (string, error) {
	switch tb.config.HashKeySource {
	case types.HashKeyNative:
		if native == "" {
			return "", types.NewDecodeErrorf("txhash", "native chain returned an empty identifier")
		}
		return native, nil
	case types.HashKeyComputed, "":
		if native != computed {
			tb.logger.Warnw("Native identifier differs from computed hash, keying by computed hash",
				"hash", computed, "nativeID", native)
		}
		return computed, nil
	default:
		return "", errors.Errorf("unknown hash key source %q", tb.config.HashKeySource)
	}
}
