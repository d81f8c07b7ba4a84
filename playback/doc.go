// Package playback turns a static *trace.Trace into a controllable,
// timed animation.
//
// A Controller is a four-state machine:
//
//	          Load/Reset (from any state)
//	                  │
//	                  ▼
//	   ┌────────── Idle ──────────┐
//	   │ Play                     │
//	   ▼                          │
//	Running ──Pause──▶ Paused     │
//	   ▲                 │        │
//	   └──────Play───────┘        │
//	   │                          │
//	   └─Tick past end─▶ Completed┘
//
// Each Tick while Running reveals the next trace element: that node becomes
// Frontier and the one before it Visited. One more Tick after the last
// element settles the final node and completes. Pausing and resuming never
// skip or repeat an element.
//
// The controller owns no timer. Hosts schedule Tick themselves, waiting
// Interval() between calls; SetSpeed changes that interval for the next
// scheduling decision only.
package playback
