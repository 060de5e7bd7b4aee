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
	"fmt"

	"devt.de/krotik/common/errorutil"
)

/*
Schema describes a monitor's declared shape: its initial states, an
optional outermost transition function, and the optional slicing/relevance
hooks. There is no reflection-based discovery of nested state classes in
this port (§9's design note): a monitor is always built from an explicit
Schema.
*/
type Schema struct {
	// Initial seeds the monitor's default state vector. Corresponds to the
	// classes a Python monitor marks with @initial (or, absent any such
	// marker, its first declared state class).
	Initial []State

	// Outer, if non-nil, is wrapped into a synthetic Always-kind state
	// that is seeded alongside Initial (§4.5). It lets a monitor react to
	// every event without declaring a dedicated state class for it.
	Outer TransitionFunc

	// Key computes the slice-routing key of an event (§4.4). Nil means
	// every event broadcasts (equivalent to always returning ok=false).
	Key KeyFunc

	// Relevant filters which events this monitor evaluates at all (§4.7
	// step 3). Nil means every event is relevant.
	Relevant func(event Event) bool
}

/*
outerAlwaysState wraps a Schema.Outer transition function as an anonymous,
always-active state, exactly the role pycontract_core.py's synthesized
"Always" subclass plays for a monitor with outermost transition methods.
*/
type outerAlwaysState struct {
	Always
	fn TransitionFunc
}

func (outerAlwaysState) Params() []interface{}                   { return nil }
func (outerAlwaysState) DisplayName() string                     { return "Always" }
func (o outerAlwaysState) Transition(m *Monitor, e Event) *Result { return o.fn(m, e) }

/*
Monitor owns a state vector, a slice map, a message log, zero or more
submonitors, an event counter and a display name (§3). It is the unit a
user verifies a trace against via Eval/Verify/End.
*/
type Monitor struct {
	name        string
	states      stateVector
	indexed     *sliceIndex
	key         KeyFunc
	relevant    func(event Event) bool
	obligations map[string]*obligationSet

	messages    []Message
	eventCount  int
	submonitors []*Monitor
	isTop       bool
	ended       bool

	// ShowStateEvent controls whether transition-error messages include
	// the "state" and "event" lines (§6). Defaults to true.
	ShowStateEvent bool

	// PrintSummary mirrors option_print_summary. It only tells a caller
	// driving End whether it is expected to also print Summary; neither
	// Summary nor End reads it, and the engine itself never writes to
	// stdout on its own.
	PrintSummary bool
}

/*
NewMonitor constructs a monitor with the given display name, seeding its
default vector from schema.Initial plus, if schema.Outer is set, a
synthetic Always-state wrapping it (§4.5).
*/
func NewMonitor(name string, schema Schema) *Monitor {
	m := &Monitor{
		name:           name,
		states:         newStateVector(),
		indexed:        newSliceIndex(),
		key:            schema.Key,
		relevant:       schema.Relevant,
		obligations:    make(map[string]*obligationSet),
		isTop:          true,
		ShowStateEvent: true,
		PrintSummary:   true,
	}

	if m.key == nil {
		m.key = func(Event) (interface{}, bool) { return nil, false }
	}
	if m.relevant == nil {
		m.relevant = func(Event) bool { return true }
	}

	for _, s := range schema.Initial {
		m.states.add(s)
	}
	if schema.Outer != nil {
		m.states.add(outerAlwaysState{fn: schema.Outer})
	}

	return m
}

/*
Name returns the monitor's display name, used in every rendered message
(§6).
*/
func (m *Monitor) Name() string {
	return m.name
}

/*
IsTop reports whether this monitor is the outermost one driving a run,
i.e. it was never passed to another monitor's MonitorThis. A runner
typically only prints Summary for the top monitor, since GetAllMessages
already aggregates every submonitor's messages into it.
*/
func (m *Monitor) IsTop() bool {
	return m.isTop
}

/*
MonitorThis registers one or more submonitors of this monitor (§6, C7).
Each event submitted to this monitor is first forwarded to its submonitors,
in the order given here, before this monitor evaluates the event itself
(§4.7, §8 P5). Likewise End cascades to submonitors first.

Each submonitor may be registered under only one parent: MonitorThis flips
sub.isTop to false, and a sub that has already been claimed by another
parent (or by this same parent a second time) would silently end up being
End'd and aggregated twice. That is a schema-authoring mistake, not a
runtime condition a caller can recover from, so it is asserted.
*/
func (m *Monitor) MonitorThis(monitors ...*Monitor) {
	for _, sub := range monitors {
		m.assertInvariant(sub.isTop, fmt.Sprintf("submonitor %q is already owned by another monitor", sub.name))
		sub.isTop = false
		m.submonitors = append(m.submonitors, sub)
	}
}

/*
SetEventCount resets the event counter, e.g. to align event numbers with
CSV row numbers when a header row precedes the data (§6).
*/
func (m *Monitor) SetEventCount(n int) {
	m.eventCount = n
}

/*
Eval submits one event to the monitor (§4.7). Submonitors see the event
before this monitor's own states do; irrelevant events (per Schema.Relevant)
are dropped without affecting any state vector.
*/
func (m *Monitor) Eval(event Event) {
	m.eventCount++

	traceHeartbeat(m.eventCount)
	traceEval(m.name, m.eventCount, event)

	for _, sub := range m.submonitors {
		sub.Eval(event)
	}

	if !m.relevant(event) {
		return
	}

	key, hasKey := m.key(event)

	if !hasKey {
		// Broadcast: step the default vector first (§9's Open Question
		// resolution - the source visits the default vector first), then
		// every existing slice.
		m.states = m.stepVector(m.states, event)

		for _, k := range m.indexed.all() {
			v := m.indexed.vectorFor(k, m.states)
			m.indexed.set(k, m.stepVector(v, event))
		}
		return
	}

	v := m.indexed.vectorFor(key, m.states)
	m.indexed.set(key, m.stepVector(v, event))
}

/*
stepVector runs stateVector.step and fires GC-trace notifications (§9's
global "destructor-trace" switch) for every state the step dropped.
*/
func (m *Monitor) stepVector(v stateVector, event Event) stateVector {
	next := v.step(m, event)

	if gcTrace {
		for k, s := range v {
			if _, ok := next[k]; !ok {
				notifyGC(s)
			}
		}
	}

	return next
}

/*
Verify iterates trace calling Eval, then calls End (§6).
*/
func (m *Monitor) Verify(trace []Event) {
	for _, event := range trace {
		m.Eval(event)
	}
	m.End()
}

/*
End finalizes monitoring: it cascades to submonitors first, then scans
every vector of this monitor for Hot/HotNext states and records an
end-of-trace obligation error for each (§4.8). End is idempotent: calling
it more than once on the same monitor has no additional effect, though
callers must still call it exactly once per run (§4.8).
*/
func (m *Monitor) End() {
	if m.ended {
		return
	}
	m.ended = true

	for _, sub := range m.submonitors {
		sub.End()
	}

	for _, s := range m.allStates() {
		if !s.Kind().isObligation() {
			continue
		}
		if arms, ok := m.obligationArmsFor(s); ok {
			m.reportEndError(fmt.Sprintf("terminates in hot state %s, outstanding: %s",
				displayState(s), mkString("[", ", ", "]", arms)))
		} else {
			m.reportEndError(fmt.Sprintf("terminates in hot state %s", displayState(s)))
		}
	}
}

/*
Summary renders the "Analysis result" end-of-trace report (§6) over every
message this monitor and its submonitors have recorded. It does not itself
append a message and may be called at any time, not only after End.
*/
func (m *Monitor) Summary() string {
	return formatSummary(m.GetAllMessages())
}

// Reporting
// =========

/*
ReportError records a user-reported error outside of any transition (§6).
*/
func (m *Monitor) ReportError(text string, payload ...interface{}) {
	m.messages = append(m.messages, Message{
		Kind:    MessageError,
		Text:    formatUserError(m.name, text),
		Payload: firstPayload(payload),
	})
}

/*
ReportInfo records a user-reported informational message outside of any
transition (§6).
*/
func (m *Monitor) ReportInfo(text string, payload ...interface{}) {
	m.messages = append(m.messages, Message{
		Kind:    MessageInfo,
		Text:    formatUserInfo(m.name, text),
		Payload: firstPayload(payload),
	})
}

func (m *Monitor) reportTransitionError(source State, event Event, text string, payload interface{}) {
	m.messages = append(m.messages, Message{
		Kind:    MessageError,
		Text:    formatTransitionError(m.name, source, m.eventCount, event, text, m.ShowStateEvent),
		Payload: payload,
	})
}

func (m *Monitor) reportTransitionInfo(source State, event Event, text string, payload interface{}) {
	m.messages = append(m.messages, Message{
		Kind:    MessageInfo,
		Text:    formatTransitionInfo(m.name, text),
		Payload: payload,
	})
}

func (m *Monitor) reportEndError(text string) {
	m.messages = append(m.messages, Message{
		Kind: MessageError,
		Text: formatEndError(m.name, text),
	})
}

// Introspection
// =============

/*
GetAllMessages returns every message recorded by this monitor, followed by
those of its submonitors in registration order (§6, §8 P5/scenario 6).
*/
func (m *Monitor) GetAllMessages() []Message {
	result := make([]Message, len(m.messages))
	copy(result, m.messages)

	for _, sub := range m.submonitors {
		result = append(result, sub.GetAllMessages()...)
	}

	return result
}

/*
GetAllMessageTexts returns the rendered text of every message GetAllMessages
would return.
*/
func (m *Monitor) GetAllMessageTexts() []string {
	all := m.GetAllMessages()
	texts := make([]string, len(all))
	for i, msg := range all {
		texts[i] = msg.Text
	}
	return texts
}

/*
Contains reports whether a state with the same class and identity tuple as
s is currently active in this monitor - not recursing into submonitors
(§4.9).
*/
func (m *Monitor) Contains(s State) bool {
	if m.states.contains(s) {
		return true
	}
	for _, k := range m.indexed.all() {
		if m.indexed.vectorFor(k, m.states).contains(s) {
			return true
		}
	}
	return false
}

/*
Exists reports whether some state in this monitor (not its submonitors)
satisfies predicate (§4.9). Together with Contains, it is how a transition
may inspect other currently active states, e.g. "has lock X already been
acquired?".
*/
func (m *Monitor) Exists(predicate func(State) bool) bool {
	for _, s := range m.allStates() {
		if predicate(s) {
			return true
		}
	}
	return false
}

/*
NumberOfStates returns the number of active states in this monitor plus,
recursively, its submonitors.
*/
func (m *Monitor) NumberOfStates() int {
	total := len(m.states)
	for _, k := range m.indexed.all() {
		total += len(m.indexed.vectorFor(k, m.states))
	}
	for _, sub := range m.submonitors {
		total += sub.NumberOfStates()
	}
	return total
}

func (m *Monitor) allStates() []State {
	all := m.states.slice()
	for _, k := range m.indexed.all() {
		all = append(all, m.indexed.vectorFor(k, m.states).slice()...)
	}
	return all
}

/*
assertInvariant panics with a message identifying this monitor if cond is
false. Used for programming-error conditions that are fatal rather than
recorded (§7): a broken user transition function is not something the
engine can recover from.
*/
func (m *Monitor) assertInvariant(cond bool, msg string) {
	errorutil.AssertTrue(cond, fmt.Sprintf("%s: %s", m.name, msg))
}
