package models

import "time"

// Event sources.
const (
	SourceGreeter = "grpc.greeter"
	SourceDNS     = "grpc.dns"
	SourceHTTP    = "http"
	SourceKafka   = "kafka"
)

// Event kinds.
const (
	KindGreeting = "greeting"
	KindDNSQuery = "dns_query"
)

// RawEvent is what a front door hands to the intake service.
type RawEvent struct {
	Source  string
	Kind    string
	Payload any
}

// IngestedEvent is the persisted record. The store assigns its identity.
type IngestedEvent struct {
	Source     string    `json:"source" bson:"source"`
	Kind       string    `json:"kind" bson:"kind"`
	Payload    any       `json:"payload" bson:"payload"`
	ReceivedAt time.Time `json:"received_at" bson:"received_at"`
}

type Ack struct {
	ID         string
	ReceivedAt time.Time
}
