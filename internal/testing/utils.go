package testing

import (
	"crypto/rand"
	"fmt"
	"testing"
	"time"

	eslogger "github.com/celer-network/cosmos-sidecar/logger"
	"github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/celer-network/cosmos-sidecar/store/tendermint"
	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	tmdb "github.com/tendermint/tm-db"
	"go.uber.org/zap"
)

// NewStore creates a new Store for testing
func NewStore(t testing.TB) store.Store {
	t.Helper()

	return tendermint.NewTMStore(tmdb.NewMemDB())
}

// NewConfig creates a new Config for testing
func NewConfig(t testing.TB) *types.Config {
	t.Helper()

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	config := types.DefaultConfig(eslogger.NewZapLogger(logger.Sugar()))
	config.BlockTime = time.Second
	return config
}

// NewHash returns a random 0x prefixed 32 byte block hash
func NewHash() string {
	return hexutil.Encode(randomBytes(32))
}

// Header given the value convert it into a Header
func Header(val interface{}) *models.Header {
	var number uint64
	switch t := val.(type) {
	case int:
		number = uint64(t)
	case uint64:
		number = t
	case int64:
		number = uint64(t)
	default:
		panic(fmt.Sprintf("Could not convert %v of type %T to Header", val, val))
	}
	return &models.Header{Hash: NewHash(), Number: number, ParentHash: NewHash()}
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}
