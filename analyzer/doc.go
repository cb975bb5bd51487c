// Package analyzer is the top-level forward/backward orchestrator: it
// builds a propagator and partitioner from a reachconfig.Configuration,
// drives closed-loop steps over a fixed horizon, and assembles the
// resulting sequence of over-approximations into a Result.
//
// What & Why:
//
//	No pack repo composes a multi-stage bounding pipeline end to end
//	under a single deadline; the closest shape is flow.Dinic's ctx
//	cancellation checked inside its augmenting-path loop. Forward and
//	Backward follow that same pattern: ctx.Err() is checked between
//	timesteps, between cell splits, and before each propagator call,
//	and a deadline that elapses mid-run produces a partial, non-error
//	Result with Truncated set rather than discarding work already done.
package analyzer
