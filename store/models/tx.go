package models

// OriginRecord is the client submitted transaction as received, before any
// re-encoding for the native chain.
type OriginRecord struct {
	// Lowercase hex hash, the store key
	Hash string `msgpack:"hash" json:"hash"`
	// Base64 transaction bytes exactly as the client sent them
	Tx string `msgpack:"tx" json:"tx"`
}

// ResultRecord is the resolved outcome of a transaction in the shape Cosmos
// clients expect from tx_search.
type ResultRecord struct {
	// Uppercase hex hash
	Hash string `msgpack:"hash" json:"hash"`
	// Decimal block height
	Height   string   `msgpack:"height" json:"height"`
	Index    uint32   `msgpack:"index" json:"index"`
	TxResult TxResult `msgpack:"tx_result" json:"tx_result"`
	// Base64 transaction bytes
	Tx string `msgpack:"tx" json:"tx"`
}

// TxResult follows the Cosmos ExecTxResult convention: gas values are
// decimal strings.
type TxResult struct {
	Code      uint32  `msgpack:"code" json:"code"`
	Data      string  `msgpack:"data" json:"data"`
	Log       string  `msgpack:"log" json:"log"`
	Info      string  `msgpack:"info" json:"info"`
	GasWanted string  `msgpack:"gas_wanted" json:"gas_wanted"`
	GasUsed   string  `msgpack:"gas_used" json:"gas_used"`
	Events    []Event `msgpack:"events" json:"events"`
	Codespace string  `msgpack:"codespace" json:"codespace"`
}

// Event is a Cosmos ABCI event with UTF-8 type, keys and values.
type Event struct {
	Type       string           `msgpack:"type" json:"type"`
	Attributes []EventAttribute `msgpack:"attributes" json:"attributes"`
}

type EventAttribute struct {
	Key   string `msgpack:"key" json:"key"`
	Value string `msgpack:"value" json:"value"`
}

// FeeMetadata is the part of a transaction's fee the resolver needs.
type FeeMetadata struct {
	GasLimit uint64
}

// BroadcastAck is returned when the native chain accepted a submission. Only
// TxHash is known at that point.
type BroadcastAck struct {
	Height    string       `json:"height"`
	TxHash    string       `json:"txhash"`
	Codespace string       `json:"codespace"`
	Code      uint32       `json:"code"`
	Data      string       `json:"data"`
	RawLog    string       `json:"raw_log"`
	Logs      []MessageLog `json:"logs"`
	Info      string       `json:"info"`
	GasWanted string       `json:"gas_wanted"`
	GasUsed   string       `json:"gas_used"`
	Timestamp string       `json:"timestamp"`
	Events    []Event      `json:"events"`
}

// MessageLog is the per-message log of a Cosmos TxResponse.
type MessageLog struct {
	MsgIndex uint32  `json:"msg_index"`
	Log      string  `json:"log"`
	Events   []Event `json:"events"`
}

// SearchResult is the tx_search response.
type SearchResult struct {
	Txs        []ResultRecord `json:"txs"`
	TotalCount int            `json:"total_count"`
}

// GasInfo of a simulated transaction.
type GasInfo struct {
	GasWanted uint64 `json:"gas_wanted"`
	GasUsed   uint64 `json:"gas_used"`
}

type SimulationResult struct {
	GasInfo GasInfo        `json:"gas_info"`
	Result  SimulationData `json:"result"`
}

type SimulationData struct {
	Data   string  `json:"data"`
	Log    string  `json:"log"`
	Events []Event `json:"events"`
}
