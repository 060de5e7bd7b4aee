/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package pubsub is a small observer-pattern pump. The root package uses one
EventPump per notification topic (GC-trace) to dispatch to whichever
callbacks a caller has registered via OnStateGarbageCollected, trimmed from
engine/pubsub's general (event name, event source) matrix down to the
single-topic shape this package actually needs.
*/
package pubsub

import "sync"

/*
EventPump implements the observer pattern for a single notification topic.
Observers subscribe once via AddObserver and are called, in registration
order, every time PostEvent fires.
*/
type EventPump struct {
	observers []EventCallback
	lock      sync.Mutex
}

/*
EventCallback is the callback function called with the event's source
every time PostEvent fires.
*/
type EventCallback func(eventSource interface{})

/*
NewEventPump creates a new, empty event pump.
*/
func NewEventPump() *EventPump {
	return &EventPump{}
}

/*
AddObserver subscribes callback to this pump's topic. A nil callback is
ignored.
*/
func (ep *EventPump) AddObserver(callback EventCallback) {
	if callback == nil {
		return
	}

	ep.lock.Lock()
	defer ep.lock.Unlock()

	ep.observers = append(ep.observers, callback)
}

/*
PostEvent notifies every observer currently subscribed, passing eventSource
through unchanged. Observers are snapshotted under the lock and then called
outside of it, so a callback that calls back into AddObserver does not
deadlock.
*/
func (ep *EventPump) PostEvent(eventSource interface{}) {
	ep.lock.Lock()
	observers := make([]EventCallback, len(ep.observers))
	copy(observers, ep.observers)
	ep.lock.Unlock()

	for _, callback := range observers {
		callback(eventSource)
	}
}
