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
stateVector is the set of currently active state instances for a monitor (or
one of its slices). It is keyed by each state's rendered display form
(displayState), which is exactly the class+identity-tuple equality §3
specifies states dedupe on.
*/
type stateVector map[string]State

func newStateVector() stateVector {
	return make(stateVector)
}

/*
add inserts s into the vector, overwriting any existing instance with the
same identity (e.g. an exhaustive state re-added with an unchanged payload
side-table entry).
*/
func (v stateVector) add(s State) {
	v[displayState(s)] = s
}

/*
contains reports whether a state with the same class and identity tuple as
s is present in the vector (§4.9's Monitor.Contains).
*/
func (v stateVector) contains(s State) bool {
	_, ok := v[displayState(s)]
	return ok
}

/*
clone returns an independent copy of the vector. Used when a slice is forked
from the default vector's current contents on first use (§4.4): since State
values are plain immutable data, a shallow copy of the map re-attaches the
same instances to a new, independently-evolving vector.
*/
func (v stateVector) clone() stateVector {
	c := make(stateVector, len(v))
	for k, s := range v {
		c[k] = s
	}
	return c
}

/*
slice returns the states in the vector as a slice. Iteration order over a Go
map is randomized, which is a fitting way to enforce §4.3's "ordering within
a single step is unspecified" at the type level rather than merely by
convention.
*/
func (v stateVector) slice() []State {
	out := make([]State, 0, len(v))
	for _, s := range v {
		out = append(out, s)
	}
	return out
}

/*
step evaluates every state currently in v against event, implementing §4.3.
Every source state is evaluated exactly once against event (no fixed-point
iteration: successors are only evaluated against the next event). Sentinel
results (Ok/Error/Info) are processed as side effects on m; storable
successors are collected into the returned vector.
*/
func (v stateVector) step(m *Monitor, event Event) stateVector {
	next := newStateVector()

	for _, s := range v {
		for _, t := range evaluate(s, m, event) {
			switch t.Kind() {
			case kindOk:
				// dropped silently: leave the source state out of next.
			case kindErrorSentinel:
				es := t.(errorState)
				m.reportTransitionError(s, event, es.text, es.payload)
			case kindInfoSentinel:
				is := t.(infoState)
				m.reportTransitionInfo(s, event, is.text, is.payload)
			default:
				next.add(t)
			}
		}
	}

	return next
}
