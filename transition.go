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
TransitionFunc is the shape of the body a state's Transition method (or an
outermost monitor-level transition, see Schema.Outer) evaluates. It is not
usually implemented directly by user code; it exists so the synthetic outer
Always-state can wrap a plain event handler given as Schema.Outer.
*/
type TransitionFunc func(m *Monitor, event Event) *Result

/*
Result is the value a Transition method returns. A nil *Result means "no
transition matches this event" - the no-match policy for the source state's
Kind then applies (§4.2). A non-nil Result normally wraps zero or more
successor states, built with Goto; Exhaustive transition bodies instead
return the value of Done.
*/
type Result struct {
	states []State // normalized successor list, built by Goto; may include Ok()/Error()/Info() sentinels mixed with real states
	done   *string // set only by Done(); mutually exclusive with states
}

/*
Goto normalizes zero or more states into a Result. Passing no arguments
builds a Result with an empty successor list - distinct from a nil *Result,
which means "nothing matched" rather than "matched and produced no
successors" (a transition wanting to both match and vanish should return
Goto(Ok()) instead).

The returned list may freely mix ordinary successor states with the
sentinel states from Ok, Error and Info: each sentinel is processed as a
side effect (dropping the source state, and for Error/Info appending a
message) while any real states in the same call are kept (§4.2's
mixed-result edge case).
*/
func Goto(states ...State) *Result {
	if states == nil {
		states = []State{}
	}
	return &Result{states: states}
}

/*
Done marks one obligation of an Exhaustive transition as discharged. token
must be one of the arm tokens passed to Monitor.Exhaustive for the state
being evaluated.
*/
func Done(token string) *Result {
	t := token
	return &Result{done: &t}
}

/*
evaluate applies the kind-specific transition semantics of §4.2 to a single
state instance, returning the normalized list of results. It is the sole
caller of a state's Transition method.
*/
func evaluate(s State, m *Monitor, event Event) []State {
	result := s.Transition(m, event)

	if result == nil {
		return noMatch(s)
	}

	if result.done != nil {
		// A transition body returned a discharge token outside of
		// Monitor.Exhaustive (e.g. a programming error in user code): treat
		// it as "no successors", since there is no obligation set to
		// consult here. Monitor.Exhaustive itself never lets a Done value
		// escape to this point.
		return nil
	}

	successors := result.states

	if s.Kind() == KindAlways {
		// The always-state is never lost: it is added back whether or not
		// the transition matched, in addition to whatever the transition
		// produced (§4.2 point 4).
		successors = append(append([]State(nil), successors...), s)
	}

	return successors
}

/*
noMatch implements §4.2 step 3: the behaviour when a transition returns nil.
*/
func noMatch(s State) []State {
	switch s.Kind() {
	case KindNormal, KindHot, KindAlways:
		return []State{s}
	case KindNext, KindHotNext:
		return []State{Error("no transition matching event")}
	default:
		return nil
	}
}
