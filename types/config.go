package types

import (
	"net/url"
	"time"
)

// HashKeySource selects which value keys the origin record written by the
// broadcaster.
type HashKeySource string

const (
	// HashKeyComputed keys records by the locally computed SHA-256 of the raw
	// transaction bytes. This is the only source the resolver can reproduce.
	HashKeyComputed = HashKeySource("computed")
	// HashKeyNative keys records by the identifier returned from the native
	// submission call.
	HashKeyNative = HashKeySource("native")
)

type Config struct {
	Logger    Logger
	BlockTime time.Duration

	// Native chain JSON-RPC endpoint, http(s):// or ws(s)://
	RPCURL *url.URL

	DBDir     string
	DBName    string
	DBBackend string

	// Tag of the native event/method naming scheme, see txmanager.EventProtocol
	EventProtocol string
	// Tag of the packed module error layout, see codec.ModuleErrorLayout
	ModuleErrorABI string
	HashKeySource  HashKeySource

	// Optional names for module indexes reported as codespaces
	Codespaces map[uint8]string

	// Number of heights the finality tracker resolves per poll, 0 for no limit
	MaxBlocksPerPoll uint64
}

// DefaultConfig returns a Config with every optional field populated.
func DefaultConfig(logger Logger) *Config {
	return &Config{
		Logger:         logger,
		BlockTime:      6 * time.Second,
		DBName:         "sidecar",
		DBBackend:      "goleveldb",
		EventProtocol:  "cosmos",
		ModuleErrorABI: "v1",
		HashKeySource:  HashKeyComputed,
		Codespaces:     map[uint8]string{},

		MaxBlocksPerPoll: 100,
	}
}
