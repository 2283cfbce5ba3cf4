package txmanager

import (
	"sync"

	"github.com/pkg/errors"
)

// SuccessPayload names the data layout of a protocol's success event.
type SuccessPayload string

const (
	// SuccessDispatchInfo is [dispatchInfo]; gas wanted comes from the fee.
	SuccessDispatchInfo = SuccessPayload("dispatch_info")
	// SuccessGasAndEvents is [gasWanted, gasUsed, events].
	SuccessGasAndEvents = SuccessPayload("gas_and_events")
)

// EventProtocol describes how a native runtime version reports the outcome
// of an extrinsic. Event names are in section::method form.
type EventProtocol struct {
	Version        string
	SuccessEvent   string
	FailureEvent   string
	SuccessPayload SuccessPayload
}

var (
	// CosmProtocol is the legacy runtime, which reports cosmos transactions
	// through the generic system events.
	CosmProtocol = EventProtocol{
		Version:        "cosm",
		SuccessEvent:   "system::ExtrinsicSuccess",
		FailureEvent:   "system::ExtrinsicFailed",
		SuccessPayload: SuccessDispatchInfo,
	}
	// CosmosProtocol is the current runtime with a dedicated execution event.
	CosmosProtocol = EventProtocol{
		Version:        "cosmos",
		SuccessEvent:   "cosmos::Executed",
		FailureEvent:   "system::ExtrinsicFailed",
		SuccessPayload: SuccessGasAndEvents,
	}
)

var (
	eventProtocolsMu sync.RWMutex
	eventProtocols   = map[string]EventProtocol{
		CosmProtocol.Version:   CosmProtocol,
		CosmosProtocol.Version: CosmosProtocol,
	}
)

// RegisterEventProtocol adds or replaces the protocol for p.Version.
func RegisterEventProtocol(p EventProtocol) error {
	if p.Version == "" {
		return errors.New("event protocol version is empty")
	}
	if p.SuccessEvent == "" || p.FailureEvent == "" {
		return errors.Errorf("event protocol %s must name both terminal events", p.Version)
	}
	if p.SuccessEvent == p.FailureEvent {
		return errors.Errorf("event protocol %s uses %s for both outcomes", p.Version, p.SuccessEvent)
	}
	switch p.SuccessPayload {
	case SuccessDispatchInfo, SuccessGasAndEvents:
	default:
		return errors.Errorf("event protocol %s has unknown success payload %q", p.Version, p.SuccessPayload)
	}

	eventProtocolsMu.Lock()
	defer eventProtocolsMu.Unlock()
	eventProtocols[p.Version] = p
	return nil
}

// EventProtocolFor returns the protocol registered under version.
func EventProtocolFor(version string) (EventProtocol, error) {
	eventProtocolsMu.RLock()
	defer eventProtocolsMu.RUnlock()
	p, ok := eventProtocols[version]
	if !ok {
		return EventProtocol{}, errors.Errorf("unknown event protocol %q", version)
	}
	return p, nil
}

// IsTerminal reports whether name marks the final outcome of an extrinsic.
func (p EventProtocol) IsTerminal(name string) bool {
	return name == p.SuccessEvent || name == p.FailureEvent
}
