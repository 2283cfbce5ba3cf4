package tendermint_test

import (
	"fmt"
	"sync"
	"testing"

	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/store/tendermint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tmdb "github.com/tendermint/tm-db"
)

const hash = "b5a2c96250612366ea272ffac6d9744aaf4b45aacd96aa7cfcb931ee3b558259"

func newResult(h string) *models.ResultRecord {
	return &models.ResultRecord{
		Hash:   h,
		Height: "42",
		Index:  1,
		TxResult: models.TxResult{
			Code:      0,
			GasWanted: "200000",
			GasUsed:   "51234",
			Events: []models.Event{{
				Type:       "transfer",
				Attributes: []models.EventAttribute{{Key: "amount", Value: "10stake"}},
			}},
		},
		Tx: "ZHVtbXk=",
	}
}

func TestTMStore_Origin(t *testing.T) {
	t.Parallel()

	store := tendermint.NewTMStore(tmdb.NewMemDB())

	_, err := store.GetOrigin(hash)
	require.ErrorIs(t, err, esStore.ErrNotFound)

	require.NoError(t, store.PutOrigin(hash, &models.OriginRecord{Hash: hash, Tx: "ZHVtbXk="}))
	origin, err := store.GetOrigin(hash)
	require.NoError(t, err)
	assert.Equal(t, "ZHVtbXk=", origin.Tx)
	assert.Equal(t, hash, origin.Hash)

	assert.Error(t, store.PutOrigin("", &models.OriginRecord{}))
}

func TestTMStore_Result(t *testing.T) {
	t.Parallel()

	store := tendermint.NewTMStore(tmdb.NewMemDB())

	_, err := store.GetResult(hash)
	require.ErrorIs(t, err, esStore.ErrNotFound)

	want := newResult("B5A2")
	require.NoError(t, store.PutResult(hash, want))
	got, err := store.GetResult(hash)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTMStore_DisjointNamespaces(t *testing.T) {
	t.Parallel()

	db := tmdb.NewMemDB()
	store := tendermint.NewTMStore(db)

	require.NoError(t, store.PutOrigin(hash, &models.OriginRecord{Hash: hash, Tx: "ZHVtbXk="}))
	_, err := store.GetResult(hash)
	require.ErrorIs(t, err, esStore.ErrNotFound)

	require.NoError(t, store.PutResult(hash, newResult(hash)))

	has, err := db.Has([]byte("tx::origin::" + hash))
	require.NoError(t, err)
	assert.True(t, has)
	has, err = db.Has([]byte("tx::result::" + hash))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestTMStore_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	store := tendermint.NewTMStore(tmdb.NewMemDB())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := fmt.Sprintf("%064x", i)
			require.NoError(t, store.PutOrigin(h, &models.OriginRecord{Hash: h}))
			require.NoError(t, store.PutResult(h, newResult(h)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 32; i++ {
		h := fmt.Sprintf("%064x", i)
		result, err := store.GetResult(h)
		require.NoError(t, err)
		assert.Equal(t, h, result.Hash)
	}
}

func TestTMStore_Head(t *testing.T) {
	t.Parallel()

	store := tendermint.NewTMStore(tmdb.NewMemDB())

	head, err := store.LastHead()
	require.NoError(t, err)
	assert.Nil(t, head)

	require.NoError(t, store.InsertHead(&models.Header{Hash: "0x02", Number: 2, ParentHash: "0x01"}))
	require.NoError(t, store.InsertHead(&models.Header{Hash: "0x01", Number: 1}))

	head, err = store.LastHead()
	require.NoError(t, err)
	require.NotNil(t, head)
	assert.Equal(t, uint64(2), head.Number)
	assert.Equal(t, "0x02", head.Hash)
	assert.Equal(t, "0x01", head.ParentHash)
}

func TestTMStore_Reopen(t *testing.T) {
	dir := t.TempDir()

	store, err := tendermint.OpenTMStore("sidecar", "goleveldb", dir)
	require.NoError(t, err)
	require.NoError(t, store.PutResult(hash, newResult(hash)))
	require.NoError(t, store.Close())

	store, err = tendermint.OpenTMStore("sidecar", "goleveldb", dir)
	require.NoError(t, err)
	defer store.Close()
	result, err := store.GetResult(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, result.Hash)
}
