package constants

// Pub/Sub providers accepted by the place event publisher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers accepted by the persistence provider.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Place catalog event types.
const (
	PlaceEventCreated = "place.created"
	PlaceEventUpdated = "place.updated"
	PlaceEventDeleted = "place.deleted"
)

// QRCodeTypePlace tags share codes that point at a place.
const QRCodeTypePlace = "place"
