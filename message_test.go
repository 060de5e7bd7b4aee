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

func TestFormatTransitionErrorWithStateEvent(t *testing.T) {
	res := formatTransitionError("locks", counterState{n: 1}, 3, "bad", "unexpected bump", true)
	want := "*** error transition in locks:\n    state counterState(1)\n    event 3 bad\n    unexpected bump"
	if res != want {
		t.Errorf("unexpected result:\n%s", res)
	}
}

func TestFormatTransitionErrorWithoutStateEvent(t *testing.T) {
	res := formatTransitionError("locks", counterState{n: 1}, 3, "bad", "unexpected bump", false)
	want := "*** error transition in locks:\n    unexpected bump"
	if res != want {
		t.Errorf("unexpected result:\n%s", res)
	}
}

func TestFormatUserAndEndErrors(t *testing.T) {
	if res := formatUserError("locks", "too many locks held"); res != "*** error in locks:\n    too many locks held" {
		t.Errorf("unexpected result: %q", res)
	}
	if res := formatEndError("locks", "terminates in hot state Hot()"); res != "*** error at end in locks:\n    terminates in hot state Hot()" {
		t.Errorf("unexpected result: %q", res)
	}
	if res := formatUserInfo("locks", "halfway there"); res != "--- message from locks:\n    halfway there" {
		t.Errorf("unexpected result: %q", res)
	}
}

func TestFormatSummaryNoMessages(t *testing.T) {
	if res := formatSummary(nil); res != "Analysis result:\nNo messages!" {
		t.Errorf("unexpected result: %q", res)
	}
}

func TestFormatSummaryWithMessages(t *testing.T) {
	messages := []Message{
		{Kind: MessageError, Text: "*** error in locks:\n    too many locks held"},
		{Kind: MessageInfo, Text: "--- message from locks:\n    halfway there"},
	}
	want := "Analysis result:\n2 messages!\n\n" +
		"*** error in locks:\n    too many locks held\n\n" +
		"--- message from locks:\n    halfway there"

	if res := formatSummary(messages); res != want {
		t.Errorf("unexpected result:\n%s", res)
	}
}
