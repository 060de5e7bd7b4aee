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

	"github.com/pyrv/pycontract/internal/config"
	"github.com/pyrv/pycontract/internal/tracelog"
	"github.com/pyrv/pycontract/pubsub"
)

/*
The package-level debug switchboard. A monitoring run is single-threaded
and cooperative (§7's Non-goals rule out concurrency and reordering), so
unlike engine/debug.go's EventTracer this needs no lock: these are plain
globals a caller flips before driving a run, mirroring how EventTracer is
a single shared instance every rule evaluation reports to.
*/
var (
	debugSink      tracelog.Logger = tracelog.NewNullLogger()
	debugVerbose   bool
	gcTrace        bool
	debugHeartbeat int

	gcPump = pubsub.NewEventPump()
)

/*
SetDebugSink sets the Logger every debug switch below writes to. Defaults
to a NullLogger, so enabling a switch without setting a sink is silent.
*/
func SetDebugSink(l tracelog.Logger) {
	debugSink = l
}

/*
SetDebugVerbose turns event-by-event evaluation tracing on or off.
*/
func SetDebugVerbose(v bool) {
	debugVerbose = v
}

/*
SetDebugGCTrace turns state garbage-collection tracing on or off (§9):
every time a step drops a state instance from a vector without re-adding
it, a debug line is logged and OnStateGarbageCollected observers are
notified.
*/
func SetDebugGCTrace(v bool) {
	gcTrace = v
}

/*
SetDebugProgress sets the event interval at which a heartbeat line is
logged, or 0 to disable it.
*/
func SetDebugProgress(n int) {
	debugHeartbeat = n
}

/*
OnStateGarbageCollected registers cb to be called whenever GC tracing is
enabled and a state instance is dropped. cb runs synchronously on the
Monitor.Eval call that dropped the state.
*/
func OnStateGarbageCollected(cb func(s State)) {
	gcPump.AddObserver(func(source interface{}) {
		cb(source.(State))
	})
}

func traceEval(monitorName string, count int, event Event) {
	if debugVerbose {
		debugSink.LogDebug(fmt.Sprintf("event %d %s -> %s", count, displayEvent(event), monitorName))
	}
}

func traceHeartbeat(count int) {
	if debugHeartbeat > 0 && count%debugHeartbeat == 0 {
		debugSink.LogInfo(fmt.Sprintf("---------------------> %d events", count))
	}
}

func notifyGC(s State) {
	debugSink.LogDebug(fmt.Sprintf("%s garbage collected", displayState(s)))
	gcPump.PostEvent(s)
}

/*
ApplyConfig drives every package-level debug switch from a loaded
internal/config.Config, the Go counterpart of the original's set_debug/
set_debug_gc/set_debug_progress calls (§9's "Global debug flags" design
note) reading from a file instead of being flipped one at a time. The sink
is a level-filtered StdOutLogger, so a "error" LogLevel (the default)
leaves verbose/GC traces silent even if those switches are also set.
*/
func ApplyConfig(cfg *config.Config) {
	SetDebugVerbose(cfg.Verbose)
	SetDebugGCTrace(cfg.GCTrace)
	SetDebugProgress(cfg.ProgressHeartbeat)

	level, err := tracelog.NewLevelLogger(tracelog.NewStdOutLogger(), cfg.LogLevel)
	if err != nil {
		// Load already validates LogLevel and falls back to the default,
		// so this can only happen if a caller hand-built an invalid Config.
		level, _ = tracelog.NewLevelLogger(tracelog.NewStdOutLogger(), string(tracelog.Error))
	}
	SetDebugSink(level)
}

/*
ConfigureMonitor applies a Config's ShowStateEvent/PrintSummary overrides
to m, leaving its current values as the default when the file left them
unset (§6's option_show_state_event, §9's "Global debug flags").
*/
func ConfigureMonitor(m *Monitor, cfg *config.Config) {
	m.ShowStateEvent = cfg.ShowStateEventOrDefault(m.ShowStateEvent)
	m.PrintSummary = cfg.PrintSummaryOrDefault(m.PrintSummary)
}
