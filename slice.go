/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package pycontract

/*
KeyFunc computes the slice-routing key of an event (§4.4). The second return
value is false for the "None key" case, which broadcasts the event to the
default vector and every existing slice instead of routing to exactly one
slice. A monitor with no KeyFunc behaves as if every event returns
(nil, false).
*/
type KeyFunc func(event Event) (key interface{}, ok bool)

/*
sliceIndex partitions a monitor's state space per slice key, so that e.g.
"for each distinct lock L, run an acquire/release automaton" can be written
without per-L plumbing (§4.4's rationale). The default vector lives outside
of sliceIndex (on the owning Monitor); sliceIndex only holds the per-key
forks of it.
*/
type sliceIndex struct {
	slices map[interface{}]stateVector
}

func newSliceIndex() *sliceIndex {
	return &sliceIndex{slices: make(map[interface{}]stateVector)}
}

/*
vectorFor returns the slice vector for key, forking it from template (the
default vector's current contents) the first time key is seen - "a private
automaton instance is forked for it" (§4.4).
*/
func (si *sliceIndex) vectorFor(key interface{}, template stateVector) stateVector {
	if v, ok := si.slices[key]; ok {
		return v
	}
	v := template.clone()
	si.slices[key] = v
	return v
}

/*
set writes back the (possibly just-created) vector for key after a step.
*/
func (si *sliceIndex) set(key interface{}, v stateVector) {
	si.slices[key] = v
}

/*
all returns every key currently tracked, snapshotted so a caller may safely
mutate si.slices while iterating the result (§4.4 broadcast routing steps
every existing slice for a None-keyed event).
*/
func (si *sliceIndex) all() []interface{} {
	keys := make([]interface{}, 0, len(si.slices))
	for k := range si.slices {
		keys = append(keys, k)
	}
	return keys
}
