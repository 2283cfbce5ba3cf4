package client

import (
	"context"

	"github.com/celer-network/cosmos-sidecar/codec"
	"github.com/celer-network/cosmos-sidecar/store/models"
	esTypes "github.com/celer-network/cosmos-sidecar/types"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

//go:generate mockery --name Client --output ../internal/mocks/ --case=underscore
//go:generate mockery --name EventDecoder --output ../internal/mocks/ --case=underscore
//go:generate mockery --name ExtrinsicDecoder --output ../internal/mocks/ --case=underscore

const (
	methodBroadcastTx      = "cosmos_broadcastTx"
	methodSimulate         = "cosmos_simulate"
	methodGetStorage       = "state_getStorage"
	methodGetFinalizedHead = "chain_getFinalizedHead"
	methodGetHeader        = "chain_getHeader"
	methodGetBlockHash     = "chain_getBlockHash"
	methodGetBlock         = "chain_getBlock"
	systemEventsStorageKey = "0x26aa394eea5630e07c48ae0c9558cef780d41e5e16056765bc8461851072c9d7"
	errStrNoEventDecoder   = "no event decoder configured"
)

// Client is the interface used to interact with the native chain node. Each
// native RPC call has its own method.
type Client interface {
	Dial(ctx context.Context) error
	Close()

	// Submit hands a 0x hex encoded cosmos transaction to the native pool and
	// returns the identifier the node reports for it.
	Submit(ctx context.Context, hexTx string) (string, error)

	// Simulate dry-runs a 0x hex encoded cosmos transaction.
	Simulate(ctx context.Context, hexTx string) (*models.SimulateResponse, error)

	// EventsAt returns the decoded system events of a block.
	EventsAt(ctx context.Context, blockHash string) ([]models.EventRecord, error)

	// DecodeTxFeeMetadata reads the fee section of raw cosmos tx bytes.
	DecodeTxFeeMetadata(rawTx []byte) (*models.FeeMetadata, error)

	FinalizedHead(ctx context.Context) (*models.Header, error)
	HeaderByNumber(ctx context.Context, number uint64) (*models.Header, error)

	// BlockExtrinsics returns the hex encoded extrinsics of a block in order.
	BlockExtrinsics(ctx context.Context, blockHash string) ([]string, error)
}

// RPCClient is the subset of go-ethereum's rpc.Client used by Impl.
// https://github.com/ethereum/go-ethereum/blob/master/rpc/client.go
type RPCClient interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	Close()
}

// EventDecoder turns the SCALE encoded System.Events storage value into event
// records. It needs the runtime metadata, which this package does not track.
type EventDecoder interface {
	DecodeEvents(raw []byte) ([]models.EventRecord, error)
}

// ExtrinsicDecoder recognizes extrinsics that carry a cosmos transaction and
// returns the raw cosmos tx bytes.
type ExtrinsicDecoder interface {
	CosmosTx(extrinsic []byte) (rawTx []byte, ok bool, err error)
}

// Impl implements Client over the node's JSON-RPC interface.
type Impl struct {
	RPCClient
	url          string
	eventDecoder EventDecoder
	mocked       bool
	logger       esTypes.Logger
}

var _ Client = (*Impl)(nil)

// NewImpl creates a new client implementation
func NewImpl(config *esTypes.Config, eventDecoder EventDecoder) (*Impl, error) {
	if config.RPCURL == nil {
		return nil, errors.New("native RPC URL is not set")
	}
	switch config.RPCURL.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return nil, errors.Errorf("native RPC URL scheme must be ws(s) or http(s): %s", config.RPCURL.String())
	}
	return &Impl{url: config.RPCURL.String(), eventDecoder: eventDecoder, logger: config.Logger}, nil
}

// NewImplWithRPC creates a client around an already connected RPCClient.
func NewImplWithRPC(rpcClient RPCClient, eventDecoder EventDecoder, logger esTypes.Logger) *Impl {
	return &Impl{RPCClient: rpcClient, eventDecoder: eventDecoder, mocked: true, logger: logger}
}

func (client *Impl) Dial(ctx context.Context) error {
	client.logger.Debugw("native.Client#Dial(...)", "url", client.url)
	if client.mocked {
		return nil
	} else if client.RPCClient != nil {
		panic("native.Client.Dial(...) should only be called once during the application's lifetime.")
	}

	rpcClient, err := rpc.DialContext(ctx, client.url)
	if err != nil {
		return errors.Wrapf(err, "could not dial %s", client.url)
	}
	client.RPCClient = rpcClient
	return nil
}

func (client *Impl) Close() {
	if client.RPCClient != nil {
		client.RPCClient.Close()
	}
}

func (client *Impl) Submit(ctx context.Context, hexTx string) (string, error) {
	client.logger.Debugw("native.Client#Submit(...)", "tx", hexTx)
	var txHash string
	err := client.CallContext(ctx, &txHash, methodBroadcastTx, hexTx)
	if err != nil {
		return "", err
	}
	if txHash == "" {
		return "", errors.New("node returned an empty transaction identifier")
	}
	return txHash, nil
}

func (client *Impl) Simulate(ctx context.Context, hexTx string) (*models.SimulateResponse, error) {
	client.logger.Debugw("native.Client#Simulate(...)", "tx", hexTx)
	var resp *models.SimulateResponse
	err := client.CallContext(ctx, &resp, methodSimulate, hexTx)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, esTypes.NewDecodeErrorf("simulate", "empty response")
	}
	return resp, nil
}

func (client *Impl) EventsAt(ctx context.Context, blockHash string) ([]models.EventRecord, error) {
	client.logger.Debugw("native.Client#EventsAt(...)", "blockHash", blockHash)
	if client.eventDecoder == nil {
		return nil, errors.New(errStrNoEventDecoder)
	}
	var storage *string
	err := client.CallContext(ctx, &storage, methodGetStorage, systemEventsStorageKey, blockHash)
	if err != nil {
		return nil, err
	}
	if storage == nil {
		// A block without events stores nothing under the key
		return nil, nil
	}
	raw, err := hexutil.Decode(*storage)
	if err != nil {
		return nil, esTypes.NewDecodeError("system.events", err)
	}
	return client.eventDecoder.DecodeEvents(raw)
}

func (client *Impl) DecodeTxFeeMetadata(rawTx []byte) (*models.FeeMetadata, error) {
	fee, err := codec.DecodeTxFee(rawTx)
	if err != nil {
		return nil, err
	}
	return &models.FeeMetadata{GasLimit: fee.GasLimit}, nil
}

func (client *Impl) FinalizedHead(ctx context.Context) (*models.Header, error) {
	client.logger.Debugw("native.Client#FinalizedHead()")
	var hash string
	if err := client.CallContext(ctx, &hash, methodGetFinalizedHead); err != nil {
		return nil, err
	}
	return client.headerByHash(ctx, hash)
}

func (client *Impl) HeaderByNumber(ctx context.Context, number uint64) (*models.Header, error) {
	client.logger.Debugw("native.Client#HeaderByNumber(...)", "number", number)
	var hash *string
	if err := client.CallContext(ctx, &hash, methodGetBlockHash, number); err != nil {
		return nil, err
	}
	if hash == nil {
		return nil, errors.Errorf("no block at height %d", number)
	}
	return client.headerByHash(ctx, *hash)
}

func (client *Impl) headerByHash(ctx context.Context, hash string) (*models.Header, error) {
	var header *models.Header
	if err := client.CallContext(ctx, &header, methodGetHeader, hash); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, errors.Errorf("no header for block %s", hash)
	}
	header.Hash = hash
	return header, nil
}

func (client *Impl) BlockExtrinsics(ctx context.Context, blockHash string) ([]string, error) {
	client.logger.Debugw("native.Client#BlockExtrinsics(...)", "blockHash", blockHash)
	var signedBlock *struct {
		Block struct {
			Extrinsics []string `json:"extrinsics"`
		} `json:"block"`
	}
	if err := client.CallContext(ctx, &signedBlock, methodGetBlock, blockHash); err != nil {
		return nil, err
	}
	if signedBlock == nil {
		return nil, errors.Errorf("no block %s", blockHash)
	}
	return signedBlock.Block.Extrinsics, nil
}
