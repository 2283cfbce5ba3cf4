package txmanager

import (
	"context"

	"github.com/celer-network/cosmos-sidecar/client"
	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/subscription"
	esTypes "github.com/celer-network/cosmos-sidecar/types"
)

// TxManager is the entry point the outer RPC layer dispatches to.
type TxManager interface {
	Start() error
	Stop() error

	BroadcastTx(ctx context.Context, txBytesBase64 string) (*models.BroadcastAck, error)

	SearchByHash(ctx context.Context, hash string) (*models.SearchResult, error)

	Simulate(ctx context.Context, txBytesBase64 string) (*models.SimulationResult, error)

	ResolveResult(
		ctx context.Context,
		header *models.Header,
		extrinsicIndex uint32,
		rawTx []byte,
	) (*models.ResultRecord, error)
}

type txManager struct {
	finalityTracker *subscription.FinalityTracker
	broadcaster     TxBroadcaster
	resolver        TxResolver
	searcher        TxSearcher
	simulator       TxSimulator

	StartStopOnce
}

var _ TxManager = (*txManager)(nil)

// NewTxManager wires the services around one native client and store. The
// extrinsic decoder is only needed by the finality tracker; with a nil
// decoder Start is a no-op and results must be resolved by the caller.
func NewTxManager(
	nativeClient client.Client,
	store esStore.Store,
	extrinsicDecoder client.ExtrinsicDecoder,
	config *esTypes.Config,
) (TxManager, error) {
	resolver, err := NewTxResolver(nativeClient, store, config)
	if err != nil {
		return nil, err
	}
	txm := &txManager{
		broadcaster: NewTxBroadcaster(nativeClient, store, config),
		resolver:    resolver,
		searcher:    NewTxSearcher(store, config),
		simulator:   NewTxSimulator(nativeClient, config),
	}
	if extrinsicDecoder != nil {
		txm.finalityTracker = subscription.NewFinalityTracker(nativeClient, extrinsicDecoder, resolver, store, config)
	}
	return txm, nil
}

func (txm *txManager) Start() error {
	return txm.StartOnce("TxManager", func() error {
		if txm.finalityTracker == nil {
			return nil
		}
		return txm.finalityTracker.Start()
	})
}

func (txm *txManager) Stop() error {
	return txm.StopOnce("TxManager", func() error {
		if txm.finalityTracker == nil {
			return nil
		}
		return txm.finalityTracker.Stop()
	})
}

func (txm *txManager) BroadcastTx(ctx context.Context, txBytesBase64 string) (*models.BroadcastAck, error) {
	return txm.broadcaster.BroadcastTx(ctx, txBytesBase64)
}

func (txm *txManager) SearchByHash(ctx context.Context, hash string) (*models.SearchResult, error) {
	return txm.searcher.SearchByHash(ctx, hash)
}

func (txm *txManager) Simulate(ctx context.Context, txBytesBase64 string) (*models.SimulationResult, error) {
	return txm.simulator.Simulate(ctx, txBytesBase64)
}

func (txm *txManager) ResolveResult(
	ctx context.Context,
	header *models.Header,
	extrinsicIndex uint32,
	rawTx []byte,
) (*models.ResultRecord, error) {
	return txm.resolver.ResolveResult(ctx, header, extrinsicIndex, rawTx)
}
