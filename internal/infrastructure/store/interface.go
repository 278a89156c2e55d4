package store

import "context"

// EventStoreInterface is the write side: an append-only log of domain
// events keyed by aggregate id.
type EventStoreInterface interface {
	Append(ctx context.Context, aggregateID, aggregateType, eventType string, data any) (*Event, error)
	GetEvents(aggregateID string) []Event
	GetAllEvents() []Event
}

// ReadStoreInterface is the query side: projected read models grouped into
// named collections.
type ReadStoreInterface interface {
	Set(collection, id string, data any)
	Get(collection, id string) (any, bool)
	GetAll(collection string) []any
	Delete(collection, id string)
	Update(collection, id string, updateFn func(current any) any) bool
}
