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
	"testing"

	"github.com/dr0pdb/symtree/pkg/common"
	"github.com/stretchr/testify/assert"
)

func TestSimplifyConstantFolding(t *testing.T) {
	in := []Expression{
		Add(1, 2),
		Sub(5, 2),
		Mul(3, 4),
		Div(8, 2),
		Mul(Add(1, 2), 4),
		Div(Sub(10, 4), Add(1, 2)),
	}
	expectedOut := []Expression{
		NewNumber(3),
		NewNumber(3),
		NewNumber(12),
		NewNumber(4),
		NewNumber(12),
		NewNumber(2),
	}

	for i := range in {
		assert.Equal(t, expectedOut[i], in[i].Simplify(), fmt.Sprintf("wrong simplification of expression %d", i))
	}
}

func TestSimplifyIdentities(t *testing.T) {
	in := []Expression{
		Add(0, "x"),
		Add("x", 0),
		Sub("x", 0),
		Mul(0, "x"),
		Mul("x", 0),
		Mul(1, "x"),
		Mul("x", 1),
		Div(0, "x"),
		Div("x", 1),
	}
	expectedOut := []Expression{
		NewVariable("x"),
		NewVariable("x"),
		NewVariable("x"),
		NewNumber(0),
		NewNumber(0),
		NewVariable("x"),
		NewVariable("x"),
		NewNumber(0),
		NewVariable("x"),
	}

	for i := range in {
		assert.Equal(t, expectedOut[i], in[i].Simplify(), fmt.Sprintf("wrong simplification of expression %d", i))
	}
}

// There is no identity for 0 - x. It stays a subtraction.
func TestSimplifyZeroMinusVariable(t *testing.T) {
	s := Sub(0, "x").Simplify()

	assert.Equal(t, Sub(0, "x"), s, "Expected 0 - x to stay a subtraction")
	assert.Equal(t, "0 - x", s.String(), "Wrong rendering of the simplified expression")
}

// A division by the constant zero is never folded. The failing evaluation
// is preserved through simplification.
func TestSimplifyZeroDivisorUnchanged(t *testing.T) {
	in := []Expression{
		Div(4, 0),
		Div("x", 0),
		Div(0, 0),
	}

	for i := range in {
		s := in[i].Simplify()
		assert.IsType(t, &BinaryOp{}, s, fmt.Sprintf("expected expression %d to stay a division", i))

		_, err := s.Evaluate(Binding{"x": 1})
		assert.NotNil(t, err, fmt.Sprintf("unexpected success in evaluating expression %d", i))
		assert.IsType(t, common.DivisionByZeroError{}, err, fmt.Sprintf("unexpected error type for expression %d", i))
	}
}

func TestSimplifyNested(t *testing.T) {
	in := []Expression{
		Add(Mul(0, "x"), Mul("y", 1)),
		Mul(Add("x", 0), Div("y", 1)),
		Sub(Mul(1, "x"), 0),
	}
	expectedOut := []Expression{
		NewVariable("y"),
		Mul("x", "y"),
		NewVariable("x"),
	}

	for i := range in {
		assert.Equal(t, expectedOut[i], in[i].Simplify(), fmt.Sprintf("wrong simplification of expression %d", i))
	}
}

func TestSimplifyNoRuleApplies(t *testing.T) {
	in := []Expression{
		Add("x", "y"),
		Sub(2, Div("y", "z")),
		Mul("x", Add("y", 2)),
	}

	for i := range in {
		assert.Equal(t, in[i], in[i].Simplify(), fmt.Sprintf("expected expression %d to be unchanged", i))
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	in := []Expression{
		Mul(3, Add("x", 2)).Differentiate("x"),
		Add(Mul(0, "x"), Mul("y", 1)),
		Sub(0, "x"),
		Div("x", 0),
		Sub(2, Div("y", "z")),
	}

	for i := range in {
		once := in[i].Simplify()
		twice := once.Simplify()
		assert.Equal(t, once, twice, fmt.Sprintf("expected simplification of expression %d to be idempotent", i))
	}
}

func TestSimplifyLeaves(t *testing.T) {
	v := NewVariable("x")
	n := NewNumber(3.25)

	assert.Equal(t, v, v.Simplify(), "Expected a variable to simplify to itself")
	assert.Equal(t, n, n.Simplify(), "Expected a number to simplify to itself")
}
