// Package closedloop composes one discrete-time closed-loop step:
// bound the controller's output over the current state set, saturate
// it to the actuator domain, then carry the state set through the
// plant's affine dynamics.
//
// What & Why:
//
//	This is the one-step operation every partitioner variant and the
//	analyzer build on: propagator.Bound -> dynamics.Clip ->
//	dynamics.Step, each already independently validated, composed
//	here the way the reference flow package composes small validated
//	sub-operations into one augmenting-path step.
package closedloop
