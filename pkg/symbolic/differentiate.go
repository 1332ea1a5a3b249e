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

func (v *Variable) Differentiate(variable string) Expression {
	if v.Name == variable {
		return NewNumber(1)
	}

	return NewNumber(0)
}

func (n *Number) Differentiate(variable string) Expression {
	return NewNumber(0)
}

// Differentiate applies the standard symbolic rules. The result is never
// simplified; callers invoke Simplify separately.
func (b *BinaryOp) Differentiate(variable string) Expression {
	dl := b.L.Differentiate(variable)
	dr := b.R.Differentiate(variable)

	switch b.Op {
	case OperatorAdd:
		return NewBinaryOp(OperatorAdd, dl, dr)

	case OperatorSub:
		return NewBinaryOp(OperatorSub, dl, dr)

	case OperatorMul:
		// product rule
		return Add(Mul(b.L, dr), Mul(b.R, dl))

	case OperatorDiv:
		// quotient rule
		return Div(Sub(Mul(b.R, dl), Mul(b.L, dr)), Mul(b.R, b.R))
	}

	panic("programming error: unexpected operator in Differentiate() of BinaryOp")
}
