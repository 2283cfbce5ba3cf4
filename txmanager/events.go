package txmanager

import (
	"fmt"

	"github.com/celer-network/cosmos-sidecar/codec"
	"github.com/celer-network/cosmos-sidecar/store/models"
)

// translateEvents converts hex encoded native events into UTF-8 Cosmos events.
// Errors name the offending field below prefix.
func translateEvents(prefix string, nativeEvents []models.NativeAbciEvent) ([]models.Event, error) {
	events := make([]models.Event, 0, len(nativeEvents))
	for i, ne := range nativeEvents {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		eventType, err := codec.DecodeJSONText(field+".type", ne.Type)
		if err != nil {
			return nil, err
		}
		attributes := make([]models.EventAttribute, 0, len(ne.Attributes))
		for j, na := range ne.Attributes {
			attrField := fmt.Sprintf("%s.attributes[%d]", field, j)
			key, err := codec.DecodeJSONText(attrField+".key", na.Key)
			if err != nil {
				return nil, err
			}
			value, err := codec.DecodeJSONText(attrField+".value", na.Value)
			if err != nil {
				return nil, err
			}
			attributes = append(attributes, models.EventAttribute{Key: key, Value: value})
		}
		events = append(events, models.Event{Type: eventType, Attributes: attributes})
	}
	return events, nil
}
