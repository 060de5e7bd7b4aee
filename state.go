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
Event is the type of values submitted to a monitor. The engine never
inspects an event's internals - only a user's Transition method does. The
key a monitor's Key function returns for an event is used as a Go map key,
so it must be comparable. Events are rendered for diagnostics with
displayEvent (stringutil.ConvertToString).
*/
type Event = interface{}

/*
Kind tags a State and determines two things: how the transition evaluator
treats a nil (no-match) result, and whether the state is a live obligation
that must not remain active at the end of a trace.
*/
type Kind uint8

/*
The five kinds a stored State instance may carry, plus three sentinel kinds
which may only ever be produced as transition results (never stored in a
vector).
*/
const (
	// KindNormal keeps the state unchanged (self-loop) when nothing matches.
	// Permitted to remain active at end of trace.
	KindNormal Kind = iota

	// KindHot behaves like KindNormal on no-match, but is an error to find
	// still active when the trace ends.
	KindHot

	// KindNext requires the very next event to match; a no-match is a
	// transition error. Permitted to remain active at end of trace: a Next
	// state entered on the last event is still active when End runs and
	// records no error.
	KindNext

	// KindHotNext combines KindNext's no-match error with KindHot's
	// end-of-trace obligation.
	KindHotNext

	// KindAlways keeps the state active no matter what: on no-match it
	// self-loops, and on a match it is reinserted alongside whatever
	// successors the transition produced.
	KindAlways

	// kindOk, kindErrorSentinel and kindInfoSentinel mark the three sentinel
	// states. They are never stored in a state vector: the evaluator
	// consumes them as soon as a transition returns them.
	kindOk
	kindErrorSentinel
	kindInfoSentinel
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindHot:
		return "Hot"
	case KindNext:
		return "Next"
	case KindHotNext:
		return "HotNext"
	case KindAlways:
		return "Always"
	case kindOk:
		return "Ok"
	case kindErrorSentinel:
		return "Error"
	case kindInfoSentinel:
		return "Info"
	default:
		return "Unknown"
	}
}

/*
isObligation returns true for the two kinds (Hot, HotNext) whose continued
presence at the end of a trace is itself an error (§4.1, §4.8).
*/
func (k Kind) isObligation() bool {
	return k == KindHot || k == KindHotNext
}

/*
requiresMatch returns true for the two kinds (Next, HotNext) for which a
nil transition result is itself a transition error, rather than a self-loop.
*/
func (k Kind) requiresMatch() bool {
	return k == KindNext || k == KindHotNext
}

/*
State is implemented by every user-defined state class. A state instance is
immutable value data: its Params (the "identity tuple") together with its
concrete Go type fully determine its identity within a monitor's state
vector (§3 - "two state instances are equal iff their class and identity
tuples match").

User states embed one of Normal, Hot, Next, HotNext or Always to pick up a
Kind implementation, and implement Params and Transition themselves. Params
may return nil for a state with no distinguishing parameters.
*/
type State interface {
	Kind() Kind
	Params() []interface{}

	/*
		Transition evaluates this state against an incoming event. The
		monitor owning the state is passed explicitly so a transition body
		can read monitor-wide fields or call auxiliary predicates such as
		Contains/Exists (§4.9) - there is no implicit attribute fallthrough
		from state to monitor in this port, unlike the dynamic original.

		A nil result means "no transition matches this event"; the
		no-match policy for the state's Kind then applies (§4.2).
	*/
	Transition(m *Monitor, event Event) *Result
}

/*
namedState is an optional interface a State may implement to override the
display name used in messages and state-vector output. By default the
unqualified Go type name is used (see displayName in format.go); this is
needed for synthetic states, such as the Always-state the engine creates
to host an outermost transition function (§4.5).
*/
type namedState interface {
	DisplayName() string
}

// Kind-marker embeddables
// =======================

/*
Normal is embedded in a state struct to give it Kind() KindNormal: on a
non-matching event the state is kept unchanged, and it may legally remain
active when the trace ends.
*/
type Normal struct{}

func (Normal) Kind() Kind { return KindNormal }

/*
Hot is embedded in a state struct to give it Kind() KindHot: behaves as
Normal, but must not be active when the trace ends.
*/
type Hot struct{}

func (Hot) Kind() Kind { return KindHot }

/*
Next is embedded in a state struct to give it Kind() KindNext: the very next
event must match one of its transitions, or a transition error is recorded.
*/
type Next struct{}

func (Next) Kind() Kind { return KindNext }

/*
HotNext is embedded in a state struct to give it Kind() KindHotNext: combines
Next's no-match error with Hot's end-of-trace obligation.
*/
type HotNext struct{}

func (HotNext) Kind() Kind { return KindHotNext }

/*
Always is embedded in a state struct to give it Kind() KindAlways: the state
is always re-added to the vector, whether or not its transition matched.
*/
type Always struct{}

func (Always) Kind() Kind { return KindAlways }

// Sentinel states
// ===============
//
// These three variants may only ever appear as the result of a Transition
// call (wrapped by Goto); the engine consumes them during evaluation and
// they are never written into a state vector (§3's invariant).

/*
okState is the sentinel produced by Ok(): drop the source state, no
successor is added.
*/
type okState struct{}

func (okState) Kind() Kind                              { return kindOk }
func (okState) Params() []interface{}                   { return nil }
func (okState) Transition(*Monitor, Event) *Result       { return nil }
func (okState) DisplayName() string                     { return "ok" }

/*
Ok returns the sentinel state that, when returned from a Transition (usually
wrapped in Goto), drops the source state without recording a message and
without adding any successor.
*/
func Ok() State { return okState{} }

/*
errorState is the sentinel produced by Error(): drop the source state and
append a transition error message.
*/
type errorState struct {
	text    string
	payload interface{}
}

func (errorState) Kind() Kind                        { return kindErrorSentinel }
func (errorState) Params() []interface{}              { return nil }
func (errorState) Transition(*Monitor, Event) *Result { return nil }
func (e errorState) DisplayName() string              { return "error" }

/*
Error returns the sentinel state that, when returned from a Transition
(usually wrapped in Goto), drops the source state and records a transition
error with the given text. An optional payload is attached to the resulting
Message for the caller's own use.
*/
func Error(text string, payload ...interface{}) State {
	return errorState{text, firstPayload(payload)}
}

/*
infoState is the sentinel produced by Info(): drop the source state and
append an informational message.
*/
type infoState struct {
	text    string
	payload interface{}
}

func (infoState) Kind() Kind                        { return kindInfoSentinel }
func (infoState) Params() []interface{}              { return nil }
func (infoState) Transition(*Monitor, Event) *Result { return nil }
func (i infoState) DisplayName() string              { return "info" }

/*
Info returns the sentinel state that, when returned from a Transition
(usually wrapped in Goto), drops the source state and records an
informational message with the given text.
*/
func Info(text string, payload ...interface{}) State {
	return infoState{text, firstPayload(payload)}
}

func firstPayload(payload []interface{}) interface{} {
	if len(payload) == 0 {
		return nil
	}
	return payload[0]
}
