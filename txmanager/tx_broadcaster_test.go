package txmanager_test

import (
	"context"
	"strings"
	"testing"

	"github.com/celer-network/cosmos-sidecar/internal/mocks"
	esTesting "github.com/celer-network/cosmos-sidecar/internal/testing"
	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/txmanager"
	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTxBroadcaster_BroadcastTx_Dummy(t *testing.T) {
	store := esTesting.NewStore(t)
	config := esTesting.NewConfig(t)
	nativeClient := new(mocks.Client)
	tb := txmanager.NewTxBroadcaster(nativeClient, store, config)

	nativeClient.On("Submit", mock.Anything, "0x64756d6d79").Return("0x"+esTesting.DummyTxHash, nil).Once()

	ack, err := tb.BroadcastTx(context.Background(), esTesting.DummyTx)
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(esTesting.DummyTxHash), ack.TxHash)
	assert.Equal(t, "0", ack.Height)
	assert.Equal(t, uint32(0), ack.Code)
	assert.Equal(t, "", ack.Codespace)
	assert.Equal(t, "0", ack.GasWanted)
	assert.Equal(t, "0", ack.GasUsed)
	assert.Empty(t, ack.Logs)
	assert.Empty(t, ack.Events)

	origin, err := store.GetOrigin(esTesting.DummyTxHash)
	require.NoError(t, err)
	assert.Equal(t, esTesting.DummyTxHash, origin.Hash)
	assert.Equal(t, esTesting.DummyTx, origin.Tx)

	nativeClient.AssertExpectations(t)
}

func TestTxBroadcaster_BroadcastTx_InvalidBase64(t *testing.T) {
	store := esTesting.NewStore(t)
	config := esTesting.NewConfig(t)
	nativeClient := new(mocks.Client)
	tb := txmanager.NewTxBroadcaster(nativeClient, store, config)

	_, err := tb.BroadcastTx(context.Background(), "not*base64")
	require.Error(t, err)
	assert.True(t, types.IsInputError(err))
	nativeClient.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestTxBroadcaster_BroadcastTx_SubmissionError(t *testing.T) {
	store := esTesting.NewStore(t)
	config := esTesting.NewConfig(t)
	nativeClient := new(mocks.Client)
	tb := txmanager.NewTxBroadcaster(nativeClient, store, config)

	nativeClient.On("Submit", mock.Anything, mock.Anything).Return("", errors.New("1010: Invalid Transaction")).Once()

	_, err := tb.BroadcastTx(context.Background(), esTesting.DummyTx)
	require.Error(t, err)
	assert.True(t, types.IsSubmissionError(err))
	assert.Contains(t, err.Error(), "Invalid Transaction")

	_, err = store.GetOrigin(esTesting.DummyTxHash)
	require.ErrorIs(t, err, esStore.ErrNotFound)
	nativeClient.AssertNumberOfCalls(t, "Submit", 1)
}

func TestTxBroadcaster_BroadcastTx_HashKeySource(t *testing.T) {
	nativeID := "0xABCDEF0000000000000000000000000000000000000000000000000000000001"
	normalized := "abcdef0000000000000000000000000000000000000000000000000000000001"

	t.Run("computed hash is the key by default", func(t *testing.T) {
		store := esTesting.NewStore(t)
		config := esTesting.NewConfig(t)
		nativeClient := new(mocks.Client)
		nativeClient.On("Submit", mock.Anything, mock.Anything).Return(nativeID, nil)
		tb := txmanager.NewTxBroadcaster(nativeClient, store, config)

		ack, err := tb.BroadcastTx(context.Background(), esTesting.DummyTx)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(esTesting.DummyTxHash), ack.TxHash)

		_, err = store.GetOrigin(esTesting.DummyTxHash)
		require.NoError(t, err)
		_, err = store.GetOrigin(normalized)
		require.ErrorIs(t, err, esStore.ErrNotFound)
	})

	t.Run("native identifier is the key when configured", func(t *testing.T) {
		store := esTesting.NewStore(t)
		config := esTesting.NewConfig(t)
		config.HashKeySource = types.HashKeyNative
		nativeClient := new(mocks.Client)
		nativeClient.On("Submit", mock.Anything, mock.Anything).Return(nativeID, nil)
		tb := txmanager.NewTxBroadcaster(nativeClient, store, config)

		ack, err := tb.BroadcastTx(context.Background(), esTesting.DummyTx)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(normalized), ack.TxHash)

		origin, err := store.GetOrigin(normalized)
		require.NoError(t, err)
		assert.Equal(t, esTesting.DummyTx, origin.Tx)
	})

	t.Run("unknown source", func(t *testing.T) {
		store := esTesting.NewStore(t)
		config := esTesting.NewConfig(t)
		config.HashKeySource = types.HashKeySource("guess")
		nativeClient := new(mocks.Client)
		nativeClient.On("Submit", mock.Anything, mock.Anything).Return(nativeID, nil)
		tb := txmanager.NewTxBroadcaster(nativeClient, store, config)

		_, err := tb.BroadcastTx(context.Background(), esTesting.DummyTx)
		require.Error(t, err)
	})
}
