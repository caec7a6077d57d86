package montgomery25519

import "github.com/AlexanderYastrebov/montgomery25519/field"

// ladderOperations are the secret-dependent steps of the ladder.
// Implementations must not branch or index memory on their arguments.
type ladderOperations interface {
	Swap(p, q *projectivePoint, cond int)
	Step(p, q *projectivePoint, affinePmQ *field.Element)
}

type constantTimeOperations struct{}

func (constantTimeOperations) Swap(p, q *projectivePoint, cond int) {
	p.swap(q, cond)
}

func (constantTimeOperations) Step(p, q *projectivePoint, affinePmQ *field.Element) {
	differentialAddAndDouble(p, q, affinePmQ)
}
