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

import "fmt"

// Composition helpers for building trees from existing expressions and raw
// operands. Strings coerce to Variable leaves and numeric values to Number
// leaves, so derivative rules and callers can write Mul(b.L, dr) or
// Add("x", 2) directly.

// Add builds an addition node over the two operands.
func Add(left, right interface{}) Expression {
	return NewBinaryOp(OperatorAdd, asExpression(left), asExpression(right))
}

// Sub builds a subtraction node over the two operands.
func Sub(left, right interface{}) Expression {
	return NewBinaryOp(OperatorSub, asExpression(left), asExpression(right))
}

// Mul builds a multiplication node over the two operands.
func Mul(left, right interface{}) Expression {
	return NewBinaryOp(OperatorMul, asExpression(left), asExpression(right))
}

// Div builds a division node over the two operands.
func Div(left, right interface{}) Expression {
	return NewBinaryOp(OperatorDiv, asExpression(left), asExpression(right))
}

// asExpression coerces a raw operand into an expression leaf.
func asExpression(operand interface{}) Expression {
	switch t := operand.(type) {
	case Expression:
		return t
	case string:
		return NewVariable(t)
	case float64:
		return NewNumber(t)
	case float32:
		return NewNumber(float64(t))
	case int:
		return NewNumber(float64(t))
	case int32:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	default:
		panic(fmt.Sprintf("programming error: unsupported operand type %T in expression composition", operand))
	}
}
