package pubsub

import (
	"encoding/json"

	"sportera/internal/domain/service"

	"github.com/pkg/errors"
)

// schemaVersion is bumped whenever PlaceEvent changes incompatibly.
const schemaVersion = "1"

// placeMessage is the transport-neutral form of a PlaceEvent.
type placeMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newPlaceMessage(event *service.PlaceEvent) (*placeMessage, error) {
	if event == nil {
		return nil, errors.New("place event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode place event")
	}

	attributes := map[string]string{
		"event_type":     event.Type,
		"place_id":       event.PlaceID,
		"schema_version": schemaVersion,
	}
	if event.OwnerID != "" {
		attributes["owner_id"] = event.OwnerID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &placeMessage{
		data:       data,
		attributes: attributes,
		// Events of one place stay ordered when the topic enables message ordering.
		orderingKey: event.PlaceID,
	}, nil
}
