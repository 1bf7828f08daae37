package physics

import "github.com/determinisk/kernel/scalar"

// Spring connects two bodies by index (A < B is not required at this
// layer — construction fixes indices, and distinct springs may share
// endpoints, per spec §3).
type Spring struct {
	ID          string
	A, B        int
	RestLength  scalar.Scalar
	Stiffness   scalar.Scalar
	DampingCoef scalar.Scalar
}
