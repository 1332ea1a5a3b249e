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

func TestNewVariable(t *testing.T) {
	v := NewVariable("x")
	assert.Equal(t, "x", v.Name, "Wrong variable name")

	assert.Panics(t, func() { NewVariable("") }, "Expected a panic on an empty variable name")
	assert.Panics(t, func() { NewVariable("x1") }, "Expected a panic on a non-alphabetic variable name")
}

func TestNewBinaryOp(t *testing.T) {
	b := NewBinaryOp(OperatorAdd, NewVariable("x"), NewNumber(1))
	assert.Equal(t, OperatorAdd, b.Op, "Wrong operator")

	assert.Panics(t, func() { NewBinaryOp(Operator(42), NewVariable("x"), NewNumber(1)) }, "Expected a panic on an unknown operator")
	assert.Panics(t, func() { NewBinaryOp(OperatorAdd, nil, NewNumber(1)) }, "Expected a panic on a nil child")
	assert.Panics(t, func() { NewBinaryOp(OperatorAdd, NewVariable("x"), nil) }, "Expected a panic on a nil child")
}

func TestEqualLeaves(t *testing.T) {
	assert.True(t, NewVariable("x").Equal(NewVariable("x")), "Expected equal variables")
	assert.False(t, NewVariable("x").Equal(NewVariable("y")), "Expected unequal variables")

	assert.True(t, NewNumber(2).Equal(NewNumber(2)), "Expected equal numbers")
	assert.False(t, NewNumber(2).Equal(NewNumber(3)), "Expected unequal numbers")

	assert.False(t, NewVariable("x").Equal(NewNumber(2)), "Expected a variable and a number to be unequal")
	assert.False(t, NewNumber(2).Equal(NewVariable("x")), "Expected a number and a variable to be unequal")
}

// Children of + and * compare as an unordered pair. Children of - and /
// compare in order.
func TestEqualCommutativity(t *testing.T) {
	in := [][2]Expression{
		{Add("x", "y"), Add("y", "x")},
		{Mul("x", 2), Mul(2, "x")},
		{Sub("x", "y"), Sub("y", "x")},
		{Div("x", "y"), Div("y", "x")},
		{Add("x", "y"), Mul("x", "y")},
	}
	expectedOut := []bool{true, true, false, false, false}

	for i := range in {
		assert.Equal(t, expectedOut[i], in[i][0].Equal(in[i][1]), fmt.Sprintf("wrong equality verdict for pair %d", i))
		assert.Equal(t, expectedOut[i], in[i][1].Equal(in[i][0]), fmt.Sprintf("expected equality to be symmetric for pair %d", i))
	}
}

func TestEqualNested(t *testing.T) {
	a := Add(Mul("x", "y"), 3)
	b := Add(3, Mul("y", "x"))

	assert.True(t, a.Equal(b), "Expected nested commutative trees to be equal")

	c := Add(3, Div("y", "x"))
	assert.False(t, a.Equal(c), "Expected trees with different operators to be unequal")
}

func TestVariables(t *testing.T) {
	in := []Expression{
		NewVariable("x"),
		NewNumber(3),
		Add(Mul("z", "a"), Div("m", "a")),
		Sub("x", "x"),
		Add(1, 2),
	}
	expectedOut := [][]string{
		{"x"},
		nil,
		{"a", "m", "z"},
		{"x"},
		nil,
	}

	for i := range in {
		assert.Equal(t, expectedOut[i], in[i].Variables(), fmt.Sprintf("wrong variables of expression %d", i))
	}
}

func TestStringLeaves(t *testing.T) {
	assert.Equal(t, "x", NewVariable("x").String(), "Wrong rendering of a variable")
	assert.Equal(t, "3", NewNumber(3).String(), "Wrong rendering of an integral number")
	assert.Equal(t, "3.25", NewNumber(3.25).String(), "Wrong rendering of a fractional number")
	assert.Equal(t, "-2", NewNumber(-2).String(), "Wrong rendering of a negative number")
	assert.Equal(t, "0.5", NewNumber(0.5).String(), "Wrong rendering of a fractional number")
}

// Rendering emits parentheses only where dropping them would change the
// structure of the tree one reads back.
func TestStringMinimalParentheses(t *testing.T) {
	in := []Expression{
		Add("x", 1),
		Add(Add("x", "y"), "z"),
		Add("x", Add("y", "z")),
		Sub(Sub("x", "y"), "z"),
		Sub("x", Sub("y", "z")),
		Sub("x", Add("y", "z")),
		Mul(Add("x", "y"), "z"),
		Mul("x", Add("y", "z")),
		Div("x", Mul("y", "z")),
		Div(Mul("x", "y"), "z"),
		Div("x", Div("y", "z")),
		Add(Mul("x", "x"), Mul("y", "y")),
		Sub(0, "x"),
	}
	expectedOut := []string{
		"x + 1",
		"x + y + z",
		"x + y + z",
		"x - y - z",
		"x - (y - z)",
		"x - (y + z)",
		"(x + y) * z",
		"x * (y + z)",
		"x / (y * z)",
		"x * y / z",
		"x / (y / z)",
		"x * x + y * y",
		"0 - x",
	}

	for i := range in {
		assert.Equal(t, expectedOut[i], in[i].String(), fmt.Sprintf("wrong rendering of expression %d", i))
	}
}
