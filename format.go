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
	"reflect"

	"devt.de/krotik/common/stringutil"
)

/*
displayName returns the unqualified class name of a state, the equivalent of
Python's self.__class__.__name__ (pycontract_core.py's get_state_name). A
state may override this via the namedState interface - used for the
synthetic Always-state the engine creates for an outermost transition
function (§4.5).
*/
func displayName(s State) string {
	if n, ok := s.(namedState); ok {
		return n.DisplayName()
	}

	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "State"
	}
	return t.Name()
}

/*
quote puts single quotes around a string argument, the way
pycontract_core.py's quote function does, so that string parameters are
visually distinguishable from numeric ones in diagnostics (§6).
*/
func quote(arg interface{}) interface{} {
	if s, ok := arg.(string); ok {
		return fmt.Sprintf("'%s'", s)
	}
	return arg
}

/*
displayState renders a state as "ClassName(param1,param2,...)" per §6's
state display format. The same rendering is also used as the map key that
the state vector dedupes on (§3): two states are equal iff their displayed
form is equal, which holds iff their class and identity tuples match.
*/
func displayState(s State) string {
	var buf bytes.Buffer

	buf.WriteString(displayName(s))

	params := s.Params()
	if len(params) > 0 || hasExplicitParams(s) {
		buf.WriteString("(")
		for i, p := range params {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(stringutil.ConvertToString(quote(p)))
		}
		buf.WriteString(")")
	}

	return buf.String()
}

/*
hasExplicitParams reports whether a state's Params method is meaningfully
defined, i.e. whether we should render empty parens for a zero-parameter
state. A Params method that returns nil is rendered without any parens at
all, matching a parameterless Python @data state with no fields; one that
returns a non-nil empty slice is rendered with "()".
*/
func hasExplicitParams(s State) bool {
	return s.Params() != nil
}

/*
mkString renders a slice of values surrounded by begin/end strings and
separated by sep, mirroring pycontract_core.py's mk_string. Used to render
the outstanding exhaustive arm list in end-of-trace diagnostics.
*/
func mkString(begin, sep, end string, args []string) string {
	var buf bytes.Buffer
	buf.WriteString(begin)
	for i, a := range args {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(a)
	}
	buf.WriteString(end)
	return buf.String()
}

/*
displayEvent renders an event for diagnostics using stringutil.ConvertToString,
the same helper engine/event.go uses to render an ECAL event's state map.
*/
func displayEvent(e Event) string {
	return stringutil.ConvertToString(e)
}
