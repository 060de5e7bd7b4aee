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

type shutdownState struct{ Hot }

func (shutdownState) Params() []interface{} { return nil }
func (s shutdownState) Transition(m *Monitor, event Event) *Result {
	return m.Exhaustive(s, []string{"flush", "disconnect"}, event, func(event Event) *Result {
		switch event {
		case "flush":
			return Done("flush")
		case "disconnect":
			return Done("disconnect")
		case "abort":
			return Goto(Error("aborted mid-shutdown"))
		case "warn":
			return Goto(s, Error("warning mid-shutdown"))
		}
		return nil
	})
}

func TestExhaustiveDischargesInAnyOrder(t *testing.T) {
	m := NewMonitor("shutdown", Schema{Initial: []State{shutdownState{}}})

	m.Eval("disconnect")
	if !m.states.contains(shutdownState{}) {
		t.Error("expected shutdown to remain active with one arm outstanding")
	}
	if arms, ok := m.obligationArmsFor(shutdownState{}); !ok || len(arms) != 1 || arms[0] != "flush" {
		t.Error("unexpected outstanding arms:", arms)
	}

	m.Eval("flush")
	if m.states.contains(shutdownState{}) {
		t.Error("expected shutdown to resolve once every arm is discharged")
	}
	if len(m.messages) != 0 {
		t.Error("discharging every arm should not record a message:", m.messages)
	}
}

func TestExhaustiveAbandonsObligationOnRealResult(t *testing.T) {
	m := NewMonitor("shutdown", Schema{Initial: []State{shutdownState{}}})

	m.Eval("disconnect")
	m.Eval("abort")

	if len(m.messages) != 1 || m.messages[0].Kind != MessageError {
		t.Fatal("expected one transition error:", m.messages)
	}
	if _, ok := m.obligationArmsFor(shutdownState{}); ok {
		t.Error("expected the obligation set to be abandoned once a real result wins")
	}
}

func TestExhaustiveErrorAlongsideSelfPreservesObligation(t *testing.T) {
	m := NewMonitor("shutdown", Schema{Initial: []State{shutdownState{}}})

	m.Eval("disconnect")
	m.Eval("warn")

	if len(m.messages) != 1 || m.messages[0].Kind != MessageError {
		t.Fatal("expected one transition error:", m.messages)
	}
	if !m.states.contains(shutdownState{}) {
		t.Error("expected shutdown to remain active: Goto(self, Error(...)) keeps self, not just reports the error")
	}
	if arms, ok := m.obligationArmsFor(shutdownState{}); !ok || len(arms) != 1 || arms[0] != "flush" {
		t.Error("expected the obligation set discharged before the warning to survive:", arms)
	}

	m.Eval("flush")
	if m.states.contains(shutdownState{}) {
		t.Error("expected shutdown to still resolve once the remaining arm is discharged")
	}
}

func TestExhaustiveUndischargedArmsReportedAtEnd(t *testing.T) {
	m := NewMonitor("shutdown", Schema{Initial: []State{shutdownState{}}})

	m.Eval("disconnect")
	m.End()

	if len(m.messages) != 1 {
		t.Fatalf("expected one end-of-trace error, got %v", m.messages)
	}
	want := "*** error at end in shutdown:\n    terminates in hot state shutdownState, outstanding: [flush]"
	if m.messages[0].Text != want {
		t.Errorf("unexpected message:\nwant: %q\ngot:  %q", want, m.messages[0].Text)
	}
}
