// Package constants holds provider names shared by configuration and infrastructure.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderMailgun = "mailgun"
	MailProviderLog     = "log"
)

// ActivitySubscription is the subscription name used in locally pushed envelopes.
const ActivitySubscription = "projects/local/subscriptions/post-activity-sub"

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
