package txmanager

import (
	"context"

	"github.com/celer-network/cosmos-sidecar/client"
	"github.com/celer-network/cosmos-sidecar/codec"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/types"
)

// TxSimulator dry-runs client transactions on the native chain. Nothing is
// persisted.
type TxSimulator interface {
	Simulate(ctx context.Context, txBytesBase64 string) (*models.SimulationResult, error)
}

type txSimulator struct {
	client client.Client
	logger types.Logger
}

var _ TxSimulator = (*txSimulator)(nil)

func NewTxSimulator(nativeClient client.Client, config *types.Config) TxSimulator {
	return &txSimulator{client: nativeClient, logger: config.Logger}
}

func (ts *txSimulator) Simulate(ctx context.Context, txBytesBase64 string) (*models.SimulationResult, error) {
	hexTx, _, err := codec.ToNativeHex(txBytesBase64)
	if err != nil {
		return nil, err
	}

	resp, err := ts.client.Simulate(ctx, hexTx)
	if err != nil {
		return nil, err
	}

	gasWanted, err := codec.DecodeJSONUint("gas_info.gas_wanted", resp.GasInfo.GasWanted)
	if err != nil {
		return nil, err
	}
	gasUsed, err := codec.DecodeJSONUint("gas_info.gas_used", resp.GasInfo.GasUsed)
	if err != nil {
		return nil, err
	}
	events, err := translateEvents("events", resp.Events)
	if err != nil {
		return nil, err
	}
	ts.logger.Debugw("Simulated tx", "gasWanted", gasWanted, "gasUsed", gasUsed, "events", len(events))

	return &models.SimulationResult{
		GasInfo: models.GasInfo{GasWanted: gasWanted, GasUsed: gasUsed},
		Result: models.SimulationData{
			Data:   "",
			Log:    "",
			Events: events,
		},
	}, nil
}
