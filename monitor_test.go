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

import "testing"

// lockEvent models an acquire/release event routed to its own per-lock
// automaton via Schema.Key, the way a file-locking monitor slices state by
// lock name (§4.4).
type lockEvent struct {
	op   string
	lock string
}

type freeState struct{ Normal }

func (freeState) Params() []interface{} { return nil }
func (freeState) Transition(m *Monitor, event Event) *Result {
	e := event.(lockEvent)
	if e.op == "acquire" {
		return Goto(heldState{lock: e.lock})
	}
	return nil
}

type heldState struct {
	Hot
	lock string
}

func (s heldState) Params() []interface{} { return []interface{}{s.lock} }
func (s heldState) Transition(m *Monitor, event Event) *Result {
	e := event.(lockEvent)
	if e.op == "acquire" {
		return Goto(Error("lock "+e.lock+" acquired twice"))
	}
	if e.op == "release" {
		return Goto(freeState{})
	}
	return nil
}

func lockMonitor() *Monitor {
	return NewMonitor("locks", Schema{
		Initial: []State{freeState{}},
		Key: func(event Event) (interface{}, bool) {
			return event.(lockEvent).lock, true
		},
	})
}

func TestMonitorRoutesEventsPerKey(t *testing.T) {
	m := lockMonitor()

	m.Eval(lockEvent{"acquire", "L1"})
	m.Eval(lockEvent{"acquire", "L2"})

	if !m.Contains(heldState{lock: "L1"}) {
		t.Error("expected L1 to be held")
	}
	if !m.Contains(heldState{lock: "L2"}) {
		t.Error("expected L2 to be held")
	}

	m.Eval(lockEvent{"release", "L1"})

	if m.Contains(heldState{lock: "L1"}) {
		t.Error("expected L1 to be released")
	}
	if !m.Contains(heldState{lock: "L2"}) {
		t.Error("expected L2 to remain held")
	}
}

func TestMonitorDoubleAcquireIsTransitionError(t *testing.T) {
	m := lockMonitor()

	m.Eval(lockEvent{"acquire", "L1"})
	m.Eval(lockEvent{"acquire", "L1"})

	if len(m.messages) != 1 || m.messages[0].Kind != MessageError {
		t.Fatal("expected exactly one transition error:", m.messages)
	}
}

func TestMonitorEndReportsOutstandingHotStates(t *testing.T) {
	m := lockMonitor()

	m.Verify([]Event{lockEvent{"acquire", "L1"}})

	if len(m.messages) != 1 {
		t.Fatalf("expected one end-of-trace error, got %v", m.messages)
	}
	want := "*** error at end in locks:\n    terminates in hot state heldState('L1')"
	if m.messages[0].Text != want {
		t.Errorf("unexpected message:\nwant: %q\ngot:  %q", want, m.messages[0].Text)
	}
}

func TestMonitorEndIsIdempotent(t *testing.T) {
	m := lockMonitor()
	m.Verify([]Event{lockEvent{"acquire", "L1"}})
	m.End()
	m.End()

	if len(m.messages) != 1 {
		t.Error("End should not record the same obligation twice:", m.messages)
	}
}

func TestMonitorNoOutstandingObligationsIsClean(t *testing.T) {
	m := lockMonitor()
	m.Verify([]Event{
		lockEvent{"acquire", "L1"},
		lockEvent{"release", "L1"},
	})

	if len(m.messages) != 0 {
		t.Error("expected no messages:", m.messages)
	}
}

// Outer transitions
// ==================

func TestMonitorOuterTransition(t *testing.T) {
	var seen []string

	m := NewMonitor("audit", Schema{
		Outer: func(m *Monitor, event Event) *Result {
			seen = append(seen, event.(string))
			return nil
		},
	})

	m.Eval("a")
	m.Eval("b")

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Error("unexpected outer transition trace:", seen)
	}
	if m.NumberOfStates() != 1 {
		t.Error("expected the synthetic Always-state to remain the only state:", m.NumberOfStates())
	}
}

// Submonitor composition
// ========================

func TestMonitorForwardsToSubmonitorsFirst(t *testing.T) {
	a := lockMonitor()
	a.name = "A"
	b := lockMonitor()
	b.name = "B"

	parent := NewMonitor("parent", Schema{})
	parent.MonitorThis(a, b)

	parent.Verify([]Event{
		lockEvent{"acquire", "L1"},
	})

	texts := parent.GetAllMessageTexts()
	if len(texts) != 2 {
		t.Fatalf("expected one end error from each submonitor, got %v", texts)
	}
	if texts[0] != "*** error at end in A:\n    terminates in hot state heldState('L1')" {
		t.Error("expected A's message first:", texts[0])
	}
	if texts[1] != "*** error at end in B:\n    terminates in hot state heldState('L1')" {
		t.Error("expected B's message second:", texts[1])
	}
}

func TestMonitorReportErrorAndInfo(t *testing.T) {
	m := NewMonitor("audit", Schema{})

	m.ReportError("configuration missing lock table")
	m.ReportInfo("loaded 3 locks")

	texts := m.GetAllMessageTexts()
	want := []string{
		"*** error in audit:\n    configuration missing lock table",
		"--- message from audit:\n    loaded 3 locks",
	}
	if len(texts) != 2 || texts[0] != want[0] || texts[1] != want[1] {
		t.Errorf("unexpected messages: %v", texts)
	}
}

func TestMonitorExistsAndContainsDoNotRecurseIntoSubmonitors(t *testing.T) {
	sub := lockMonitor()
	sub.Eval(lockEvent{"acquire", "L1"})

	parent := NewMonitor("parent", Schema{Initial: []State{freeState{}}})
	parent.MonitorThis(sub)

	if parent.Contains(heldState{lock: "L1"}) {
		t.Error("Contains should not see into a submonitor's state space")
	}
	if parent.Exists(func(s State) bool { return s.Kind() == KindHot }) {
		t.Error("Exists should not see into a submonitor's state space")
	}
	// parent's own default vector (1) + the submonitor's default vector
	// (1, untouched since its Key routes every event to a slice) + the
	// submonitor's L1 slice (1).
	if parent.NumberOfStates() != 3 {
		t.Error("NumberOfStates should still count the submonitor recursively:", parent.NumberOfStates())
	}
}

func TestMonitorRelevantFiltersEvents(t *testing.T) {
	var evaluated int

	m := NewMonitor("filtered", Schema{
		Relevant: func(event Event) bool { return event != "skip" },
		Outer: func(m *Monitor, event Event) *Result {
			evaluated++
			return nil
		},
	})

	m.Eval("skip")
	m.Eval("count")

	if evaluated != 1 {
		t.Error("expected the outer transition to only see the relevant event:", evaluated)
	}
}
