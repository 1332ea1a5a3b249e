/**
 * Copyright 2026 The Symtree Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package symbolic

import (
	"fmt"

	"github.com/dr0pdb/symtree/pkg/common"
)

func (v *Variable) Evaluate(bindings Binding) (float64, error) {
	val, ok := bindings[v.Name]
	if !ok {
		return 0, common.NewEvaluationError(fmt.Sprintf("value for variable %q is missing from the binding", v.Name))
	}

	return val, nil
}

func (n *Number) Evaluate(bindings Binding) (float64, error) {
	return n.Value, nil
}

// Evaluate computes both children and applies the operator. Both subtrees
// are always evaluated; there is no short-circuiting.
func (b *BinaryOp) Evaluate(bindings Binding) (float64, error) {
	l, err := b.L.Evaluate(bindings)
	if err != nil {
		return 0, err
	}

	r, err := b.R.Evaluate(bindings)
	if err != nil {
		return 0, err
	}

	return b.Op.apply(l, r)
}

// apply computes the arithmetic result of the operator on two values.
func (op Operator) apply(l, r float64) (float64, error) {
	switch op {
	case OperatorAdd:
		return l + r, nil

	case OperatorSub:
		return l - r, nil

	case OperatorMul:
		return l * r, nil

	case OperatorDiv:
		if r == 0 {
			return 0, common.NewDivisionByZeroError("invalid divisor in division operation: cannot divide by zero")
		}
		return l / r, nil
	}

	panic("programming error: unexpected operator in apply() of Operator")
}
