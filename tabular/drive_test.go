/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tabular

import (
	"strings"
	"testing"

	"github.com/pyrv/pycontract"
)

type freeState struct{ pycontract.Normal }

func (freeState) Params() []interface{} { return nil }
func (freeState) Transition(m *pycontract.Monitor, event pycontract.Event) *pycontract.Result {
	if event.(Row)["op"] == "acquire" {
		return pycontract.Goto(heldState{lock: event.(Row)["lock"]})
	}
	return nil
}

type heldState struct {
	pycontract.Hot
	lock string
}

func (s heldState) Params() []interface{} { return []interface{}{s.lock} }
func (s heldState) Transition(m *pycontract.Monitor, event pycontract.Event) *pycontract.Result {
	if event.(Row)["op"] == "release" && event.(Row)["lock"] == s.lock {
		return pycontract.Goto(freeState{})
	}
	return nil
}

func TestDriveSubmitsEveryRowAndCallsEnd(t *testing.T) {
	m := pycontract.NewMonitor("locks", pycontract.Schema{
		Initial: []pycontract.State{freeState{}},
		Key: func(event pycontract.Event) (interface{}, bool) {
			return event.(Row)["lock"], true
		},
	})

	r := NewReader(strings.NewReader("op,lock\nacquire,L1\nrelease,L1\nacquire,L2\n"))

	if err := Drive(m, r, func(row Row) pycontract.Event { return row }); err != nil {
		t.Fatal(err)
	}

	texts := m.GetAllMessageTexts()
	if len(texts) != 1 {
		t.Fatalf("expected exactly one outstanding-lock error, got %v", texts)
	}
	want := "*** error at end in locks:\n    terminates in hot state heldState('L2')"
	if texts[0] != want {
		t.Errorf("unexpected message:\nwant: %q\ngot:  %q", want, texts[0])
	}
}
