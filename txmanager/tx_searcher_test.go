package txmanager_test

import (
	"context"
	"strings"
	"testing"

	esTesting "github.com/celer-network/cosmos-sidecar/internal/testing"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/txmanager"
	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxSearcher_SearchByHash(t *testing.T) {
	store := esTesting.NewStore(t)
	config := esTesting.NewConfig(t)
	ts := txmanager.NewTxSearcher(store, config)

	result, err := ts.SearchByHash(context.Background(), esTesting.DummyTxHash)
	require.NoError(t, err)
	assert.NotNil(t, result.Txs)
	assert.Empty(t, result.Txs)
	assert.Equal(t, 0, result.TotalCount)

	record := &models.ResultRecord{
		Hash:   strings.ToUpper(esTesting.DummyTxHash),
		Height: "42",
		Index:  1,
		TxResult: models.TxResult{
			GasWanted: "200000",
			GasUsed:   "51234",
			Events:    []models.Event{{Type: "message", Attributes: []models.EventAttribute{{Key: "action", Value: "send"}}}},
		},
		Tx: esTesting.DummyTx,
	}
	require.NoError(t, store.PutResult(esTesting.DummyTxHash, record))

	for _, query := range []string{
		esTesting.DummyTxHash,
		strings.ToUpper(esTesting.DummyTxHash),
		"0x" + esTesting.DummyTxHash,
		"0x" + strings.ToUpper(esTesting.DummyTxHash),
	} {
		result, err := ts.SearchByHash(context.Background(), query)
		require.NoError(t, err, query)
		require.Len(t, result.Txs, 1, query)
		assert.Equal(t, 1, result.TotalCount)
		assert.Equal(t, *record, result.Txs[0])
	}
}

func TestTxSearcher_SearchByHash_OriginOnly(t *testing.T) {
	store := esTesting.NewStore(t)
	config := esTesting.NewConfig(t)
	ts := txmanager.NewTxSearcher(store, config)

	require.NoError(t, store.PutOrigin(esTesting.DummyTxHash, &models.OriginRecord{Hash: esTesting.DummyTxHash, Tx: esTesting.DummyTx}))

	result, err := ts.SearchByHash(context.Background(), esTesting.DummyTxHash)
	require.NoError(t, err)
	assert.Empty(t, result.Txs)
	assert.Equal(t, 0, result.TotalCount)
}

func TestTxSearcher_SearchByHash_Malformed(t *testing.T) {
	store := esTesting.NewStore(t)
	config := esTesting.NewConfig(t)
	ts := txmanager.NewTxSearcher(store, config)

	for _, query := range []string{
		"",
		"0x",
		"xyz",
		strings.Repeat("g", 64),
		esTesting.DummyTxHash + "00",
	} {
		_, err := ts.SearchByHash(context.Background(), query)
		require.Error(t, err, query)
		assert.True(t, types.IsInputError(err), query)
	}
}
