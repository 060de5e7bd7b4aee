/*
 * pycontract
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package pycontract is a runtime verification engine. A user defines one or more
Monitors, each carrying a set of named States, a transition relation over
incoming events, and an optional set of submonitors executed in parallel.

Monitoring consumes events one at a time and maintains, per monitor, a state
vector: the set of currently active state instances. On every event each
active state is evaluated, may be replaced by zero or more successor states,
and the resulting messages (errors and informational notes) are collected in
the monitor's message log.

The package implements only the evaluation engine: the state-vector algebra,
the five state kinds, the slice-index mechanism for per-key automata, the
submonitor composition, the exhaustive obligation combinator, and the
end-of-trace obligation check. Reading traces from CSV files, rendering a
monitor as a diagram, and generating demonstration traces are explicitly out
of scope for this package; see the tabular package for a CSV adapter built on
top of the public interface.
*/
package pycontract
