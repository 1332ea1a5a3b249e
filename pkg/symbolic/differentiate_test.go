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

	"github.com/stretchr/testify/assert"
)

func TestDifferentiateLeaves(t *testing.T) {
	assert.Equal(t, NewNumber(1), NewVariable("x").Differentiate("x"), "Wrong derivative of a variable wrt itself")
	assert.Equal(t, NewNumber(0), NewVariable("y").Differentiate("x"), "Wrong derivative of a variable wrt another variable")
	assert.Equal(t, NewNumber(0), NewNumber(3.25).Differentiate("x"), "Wrong derivative of a constant")
}

func TestDifferentiateSumAndDifference(t *testing.T) {
	in := []Expression{
		Add("x", "y"),
		Sub("x", "y"),
	}
	expectedOut := []Expression{
		Add(1, 0),
		Sub(1, 0),
	}

	for i := range in {
		d := in[i].Differentiate("x")
		assert.Equal(t, expectedOut[i], d, fmt.Sprintf("wrong derivative of expression %d", i))
	}
}

// d(l * r) = l * dr + r * dl
func TestDifferentiateProductRule(t *testing.T) {
	d := Mul("x", "y").Differentiate("x")
	expected := Add(Mul("x", 0), Mul("y", 1))

	assert.Equal(t, expected, d, "Wrong derivative under the product rule")
}

// d(l / r) = (r * dl - l * dr) / (r * r)
func TestDifferentiateQuotientRule(t *testing.T) {
	d := Div("x", "y").Differentiate("x")
	expected := Div(Sub(Mul("y", 1), Mul("x", 0)), Mul("y", "y"))

	assert.Equal(t, expected, d, "Wrong derivative under the quotient rule")
}

func TestDifferentiateThenSimplify(t *testing.T) {
	in := []Expression{
		Mul(3, Add("x", 2)),
		Mul("x", "x"),
		Mul("x", "y"),
	}
	variables := []string{"x", "x", "z"}
	expectedOut := []string{
		"3",
		"x + x",
		"0",
	}

	for i := range in {
		d := in[i].Differentiate(variables[i]).Simplify()
		assert.Equal(t, expectedOut[i], d.String(), fmt.Sprintf("wrong simplified derivative of expression %d", i))
	}
}

// The derivative of a sum is the sum of the derivatives.
func TestDifferentiateLinearity(t *testing.T) {
	f := Mul("x", "x")
	g := Div("y", "x")

	lhs := Add(f, g).Differentiate("x")
	rhs := Add(f.Differentiate("x"), g.Differentiate("x"))

	assert.True(t, lhs.Equal(rhs), "Expected the derivative of a sum to equal the sum of the derivatives")
}

// Differentiation never rewrites the input tree.
func TestDifferentiateLeavesInputIntact(t *testing.T) {
	ex := Mul("x", Add("y", 1))
	before := ex.String()

	_ = ex.Differentiate("x")

	assert.Equal(t, before, ex.String(), "Expected the input tree to be unchanged after differentiation")
}
