package constants

// Pub/Sub provider names accepted by the `pubsub.provider` config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Account event types published to the event topic.
const (
	EventTypeAccountDeleted  = "account.deleted"
	EventTypePresenceOnline  = "presence.online"
	EventTypePresenceOffline = "presence.offline"
)
