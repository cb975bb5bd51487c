// Package plants provides a small catalogue of concrete dynamics.Plant
// implementations used by the example scenarios and tests: a double
// integrator and a planar quadrotor, both linearized discrete-time
// affine models.
//
// What & Why:
//
//	The component design treats plant construction as an external
//	collaborator, but the literal test scenarios need concrete plants to
//	exist and be exercised, so this package supplies a few reference
//	constructors behind the dynamics.Plant interface, grounded on the
//	reference corpus's pattern of small concrete constructors sharing one
//	interface.
package plants
