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

import (
	"devt.de/krotik/common/sortutil"
)

/*
obligationSet tracks which arm tokens of an exhaustive state remain to be
discharged. It is the payload MatchObligations plays in
pycontract_core.py's exhaustive decorator, ported as an explicit data
structure rather than inferred from source locations of done() calls (§9's
design note: "authored explicitly via an array of arm-labels supplied
alongside the transition").
*/
type obligationSet struct {
	remaining map[string]bool
}

func newObligationSet(arms []string) *obligationSet {
	remaining := make(map[string]bool, len(arms))
	for _, a := range arms {
		remaining[a] = true
	}
	return &obligationSet{remaining: remaining}
}

func (o *obligationSet) remove(token string) {
	delete(o.remaining, token)
}

func (o *obligationSet) empty() bool {
	return len(o.remaining) == 0
}

/*
arms returns the still-outstanding arm tokens, sorted for deterministic
diagnostics.
*/
func (o *obligationSet) arms() []string {
	keys := make([]interface{}, 0, len(o.remaining))
	for k := range o.remaining {
		keys = append(keys, k)
	}
	sortutil.InterfaceStrings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

/*
Exhaustive evaluates body on behalf of self, tracking which of the given arm
tokens have been discharged via Done (§4.6). arms must be non-empty - a
state with no obligations has no business being wrapped in Exhaustive, and
an empty arm set is invariably an authoring mistake (e.g. a copy-pasted
arm list that lost its entries), so this is asserted as a fatal condition
rather than silently producing a state that discharges on its first event.

On first entry for a given state identity an obligation set covering every
arm is created; each Done(token) result removes that token, and once the
set empties the state is discharged with Ok. A body that returns a real
Result (Goto of one or more states, Ok, or Error) abandons the obligation
set, *unless* self is itself among the returned states - per §4.6/§9's
resolution of the exhaustive/error interaction, a result such as
Goto(self, Error("x")) keeps self's reduced obligation set alive (the
error is processed as a side effect by the caller, and self carries on
with whatever arms were still outstanding) while a result that replaces
self entirely (a bare Ok/Error/different state) abandons it. A nil result
(no match) is passed straight through so the enclosing state's Kind can
apply its usual no-match policy (e.g. Hot/Next keep self-looping or error
out).

self must be the same state instance (by identity: class + Params) that is
being evaluated - normally this is simply the receiver of a Transition
method that delegates to Exhaustive.
*/
func (m *Monitor) Exhaustive(self State, arms []string, event Event, body func(Event) *Result) *Result {
	m.assertInvariant(len(arms) > 0, "Exhaustive requires at least one obligation arm")

	key := displayState(self)

	obl, ok := m.obligations[key]
	if !ok {
		obl = newObligationSet(arms)
		m.obligations[key] = obl
	}

	result := body(event)

	if result == nil {
		return nil
	}

	if result.done != nil {
		obl.remove(*result.done)
		if obl.empty() {
			delete(m.obligations, key)
			return Goto(Ok())
		}
		return Goto(self)
	}

	if !containsState(result.states, key) {
		delete(m.obligations, key)
	}
	return result
}

/*
containsState reports whether target's display identity appears among
states, by the same class+identity-tuple equality the state vector
dedupes on (§3).
*/
func containsState(states []State, target string) bool {
	for _, s := range states {
		if displayState(s) == target {
			return true
		}
	}
	return false
}

/*
obligationArmsFor returns the outstanding arm tokens for a state still
tracked by the monitor's obligation table, and whether any tracking exists
at all. Used by Monitor.end to enumerate undischarged arms (§4.6, §4.8).
*/
func (m *Monitor) obligationArmsFor(s State) ([]string, bool) {
	obl, ok := m.obligations[displayState(s)]
	if !ok || obl.empty() {
		return nil, false
	}
	return obl.arms(), true
}
