// Package reachtube computes sound over-approximations of a
// closed-loop system's reachable states: a discrete-time affine plant
// under actuator saturation, driven by a feed-forward ReLU network
// controller.
//
// A run assembles several independent concerns:
//
//	vecbox/      — box and polytope constraint algebra
//	ffnet/       — feed-forward network representation and evaluation
//	dynamics/    — plant interface, closed-loop state update, simulation
//	propagator/  — IBP, CROWN, Fast-Lin, and SDP bound propagators
//	partitioner/ — None, Uniform, SimGuided, GreedySimGuided input-space splitting
//	closedloop/  — one-step composition of propagator and dynamics
//	analyzer/    — forward tube computation and backward pre-image computation
//	reachconfig/ — the in-memory configuration record the analyzer validates
//
// Every propagator and partitioner is registered under a string name
// (propagator.New, partitioner.New) so a reachconfig.Configuration
// value can select one without the caller importing every concrete
// implementation.
//
//	go get github.com/lmarchetti/reachtube
package reachtube
