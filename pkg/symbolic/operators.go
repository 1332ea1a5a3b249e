package symbolic

// Operator is the tag of a binary operation node.
type Operator uint64

const (
	OperatorAdd Operator = iota // '+'
	OperatorSub                 // '-'
	OperatorMul                 // '*'
	OperatorDiv                 // '/'
)

// Expression precedence levels used for minimal parenthesization.
// Leaves never need parentheses; multiplication binds tighter than addition.
const (
	precedenceAddSub = 1
	precedenceMulDiv = 2
	precedenceLeaf   = 10
)

func (op Operator) String() string {
	switch op {
	case OperatorAdd:
		return "+"

	case OperatorSub:
		return "-"

	case OperatorMul:
		return "*"

	case OperatorDiv:
		return "/"
	}

	panic("programming error: unexpected operator in String() of Operator")
}

// precedence returns the binding strength of the operator.
func (op Operator) precedence() int {
	switch op {
	case OperatorAdd, OperatorSub:
		return precedenceAddSub

	case OperatorMul, OperatorDiv:
		return precedenceMulDiv
	}

	panic("programming error: unexpected operator in precedence() of Operator")
}

// commutative reports whether the operands of the operator can be swapped
// without changing the result. Used by equality and fingerprinting.
func (op Operator) commutative() bool {
	switch op {
	case OperatorAdd, OperatorMul:
		return true

	case OperatorSub, OperatorDiv:
		return false
	}

	panic("programming error: unexpected operator in commutative() of Operator")
}

// valid reports whether op is one of the four known operators.
func (op Operator) valid() bool {
	return op == OperatorAdd || op == OperatorSub || op == OperatorMul || op == OperatorDiv
}
