package events

import "time"

// BaseEvent is a plain Event implementation for dispatchers that only
// need a name and a payload.
type BaseEvent struct {
	name     string
	dateTime time.Time
	payload  any
}

func NewBaseEvent(name string) *BaseEvent {
	return &BaseEvent{name: name, dateTime: time.Now().UTC()}
}

func (e *BaseEvent) GetName() string        { return e.name }
func (e *BaseEvent) GetDateTime() time.Time { return e.dateTime }
func (e *BaseEvent) GetPayload() any        { return e.payload }
func (e *BaseEvent) SetPayload(payload any) { e.payload = payload }
