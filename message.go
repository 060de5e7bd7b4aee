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
	"bytes"
	"fmt"
)

/*
MessageKind distinguishes the two verdicts a Message may carry (§3).
*/
type MessageKind uint8

const (
	// MessageError records a transition error, a no-match error on a Next
	// or HotNext state, an end-of-trace obligation error, or a user call
	// to ReportError.
	MessageError MessageKind = iota

	// MessageInfo records an informational note: either an Info sentinel
	// returned from a transition, or a user call to ReportInfo.
	MessageInfo
)

/*
Message is a single entry in a monitor's message log (§3, §6): a kind, a
fully rendered text and an optional user payload carried alongside it (the
Error/Info/ReportError/ReportInfo "data object").
*/
type Message struct {
	Kind    MessageKind
	Text    string
	Payload interface{}
}

func (m Message) String() string {
	return m.Text
}

// Message rendering
// ==================
//
// These renderings are the stable, test-observable formats of §6.

func formatTransitionError(monitorName string, state State, eventCount int, event Event, text string, showStateEvent bool) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "*** error transition in %s:\n", monitorName)
	if showStateEvent {
		fmt.Fprintf(&buf, "    state %s\n", displayState(state))
		fmt.Fprintf(&buf, "    event %d %s\n", eventCount, displayEvent(event))
	}
	fmt.Fprintf(&buf, "    %s", text)
	return buf.String()
}

func formatTransitionInfo(monitorName string, text string) string {
	return fmt.Sprintf("--- message from %s:\n    %s", monitorName, text)
}

func formatEndError(monitorName string, text string) string {
	return fmt.Sprintf("*** error at end in %s:\n    %s", monitorName, text)
}

func formatUserError(monitorName string, text string) string {
	return fmt.Sprintf("*** error in %s:\n    %s", monitorName, text)
}

func formatUserInfo(monitorName string, text string) string {
	return fmt.Sprintf("--- message from %s:\n    %s", monitorName, text)
}

/*
formatSummary renders the end-of-trace "Analysis result" summary (§6): a
header line, then either "No messages!" or "<N> messages!" followed by each
message separated by a blank line.
*/
func formatSummary(messages []Message) string {
	var buf bytes.Buffer
	buf.WriteString("Analysis result:\n")

	if len(messages) == 0 {
		buf.WriteString("No messages!")
		return buf.String()
	}

	fmt.Fprintf(&buf, "%d messages!", len(messages))
	for _, msg := range messages {
		buf.WriteString("\n\n")
		buf.WriteString(msg.Text)
	}
	return buf.String()
}
