package txmanager

import (
	"context"

	"github.com/celer-network/cosmos-sidecar/codec"
	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/types"

	"github.com/pkg/errors"
)

// TxSearcher answers tx_search by hash from resolved results.
type TxSearcher interface {
	SearchByHash(ctx context.Context, hash string) (*models.SearchResult, error)
}

type txSearcher struct {
	store  esStore.Store
	logger types.Logger
}

var _ TxSearcher = (*txSearcher)(nil)

func NewTxSearcher(store esStore.Store, config *types.Config) TxSearcher {
	return &txSearcher{store: store, logger: config.Logger}
}

// SearchByHash accepts the hash in either case with an optional 0x marker. A
// transaction that is unknown or not yet resolved yields an empty result.
func (ts *txSearcher) SearchByHash(ctx context.Context, hash string) (*models.SearchResult, error) {
	key, err := codec.NormalizeHash(hash)
	if err != nil {
		return nil, err
	}
	ts.logger.Debugw("Searching tx", "hash", key)

	txs := []models.ResultRecord{}
	record, err := ts.store.GetResult(key)
	switch {
	case err == nil:
		txs = append(txs, *record)
	case errors.Is(err, esStore.ErrNotFound):
	default:
		return nil, errors.Wrapf(err, "could not read result for tx %s", key)
	}
	return &models.SearchResult{Txs: txs, TotalCount: len(txs)}, nil
}
