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

func (v *Variable) Simplify() Expression { return v }

func (n *Number) Simplify() Expression { return n }

// Simplify rewrites the tree bottom-up: children first, then constant
// folding when both children are numbers, then the per-operator identities.
// A division whose divisor is the constant zero is never folded, so a tree
// whose evaluation fails keeps failing after simplification.
func (b *BinaryOp) Simplify() Expression {
	ls := b.L.Simplify()
	rs := b.R.Simplify()

	ln, lok := ls.(*Number)
	rn, rok := rs.(*Number)

	switch b.Op {
	case OperatorAdd:
		if lok && rok {
			return NewNumber(ln.Value + rn.Value)
		}
		if lok && ln.Value == 0 {
			return rs
		}
		if rok && rn.Value == 0 {
			return ls
		}

	case OperatorSub:
		if lok && rok {
			return NewNumber(ln.Value - rn.Value)
		}
		if rok && rn.Value == 0 {
			return ls
		}

	case OperatorMul:
		if lok && rok {
			return NewNumber(ln.Value * rn.Value)
		}
		if lok && ln.Value == 0 {
			return NewNumber(0)
		}
		if lok && ln.Value == 1 {
			return rs
		}
		if rok && rn.Value == 0 {
			return NewNumber(0)
		}
		if rok && rn.Value == 1 {
			return ls
		}

	case OperatorDiv:
		if lok && rok && rn.Value != 0 {
			return NewNumber(ln.Value / rn.Value)
		}
		if lok && !rok && ln.Value == 0 {
			return NewNumber(0)
		}
		if rok && rn.Value == 1 {
			return ls
		}

	default:
		panic("programming error: unexpected operator in Simplify() of BinaryOp")
	}

	return NewBinaryOp(b.Op, ls, rs)
}
