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
	"sort"
	"strconv"
	"unicode"
)

var (
	_ Expression = (*Variable)(nil)
	_ Expression = (*Number)(nil)
	_ Expression = (*BinaryOp)(nil)
)

// Binding maps variable names to the values used during evaluation.
type Binding map[string]float64

// Expression denotes a node of an immutable expression tree.
// Every transformation returns a new tree; no node is mutated in place.
type Expression interface {
	// Evaluate computes the numeric value of the tree under the binding.
	Evaluate(bindings Binding) (float64, error)

	// Differentiate returns the unsimplified symbolic derivative with
	// respect to the named variable.
	Differentiate(variable string) Expression

	// Simplify returns the tree rewritten bottom-up with constant folding
	// and the algebraic identity rules.
	Simplify() Expression

	// Equal reports structural equality. Children of commutative operators
	// are compared as an unordered pair.
	Equal(other Expression) bool

	// Fingerprint returns a structural hash consistent with Equal.
	Fingerprint() uint64

	// Variables returns the sorted names of the variables in the tree.
	Variables() []string

	// String renders the tree as minimally parenthesized infix text.
	String() string

	// precedence is the binding strength used when rendering.
	precedence() int

	expression()
}

// Variable is a named leaf.
type Variable struct {
	Name string
}

// Number is a numeric constant leaf.
type Number struct {
	Value float64
}

// BinaryOp combines two sub-expressions with one of the four operators.
type BinaryOp struct {
	Op Operator

	L, R Expression
}

func (v *Variable) expression() {}
func (n *Number) expression()   {}
func (b *BinaryOp) expression() {}

// NewVariable creates a variable leaf. The name must be a non-empty
// alphabetic token.
func NewVariable(name string) *Variable {
	if name == "" {
		panic("programming error: empty variable name")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			panic(fmt.Sprintf("programming error: non-alphabetic variable name %q", name))
		}
	}

	return &Variable{Name: name}
}

// NewNumber creates a numeric constant leaf.
func NewNumber(value float64) *Number {
	return &Number{Value: value}
}

// NewBinaryOp creates an operation node over the two children.
func NewBinaryOp(op Operator, l, r Expression) *BinaryOp {
	if !op.valid() {
		panic(fmt.Sprintf("programming error: unknown operator %d in NewBinaryOp", op))
	}
	if l == nil || r == nil {
		panic("programming error: nil child in NewBinaryOp")
	}

	return &BinaryOp{Op: op, L: l, R: r}
}

//
// Structural equality
//

func (v *Variable) Equal(other Expression) bool {
	o, ok := other.(*Variable)
	return ok && v.Name == o.Name
}

func (n *Number) Equal(other Expression) bool {
	o, ok := other.(*Number)
	return ok && n.Value == o.Value
}

func (b *BinaryOp) Equal(other Expression) bool {
	o, ok := other.(*BinaryOp)
	if !ok || b.Op != o.Op {
		return false
	}

	if b.L.Equal(o.L) && b.R.Equal(o.R) {
		return true
	}

	return b.Op.commutative() && b.L.Equal(o.R) && b.R.Equal(o.L)
}

//
// Variable inventory
//

func (v *Variable) Variables() []string { return []string{v.Name} }

func (n *Number) Variables() []string { return nil }

func (b *BinaryOp) Variables() []string {
	seen := make(map[string]struct{})
	var names []string

	for _, name := range append(b.L.Variables(), b.R.Variables()...) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}

//
// Rendering
//

func (v *Variable) precedence() int { return precedenceLeaf }
func (n *Number) precedence() int   { return precedenceLeaf }
func (b *BinaryOp) precedence() int { return b.Op.precedence() }

func (v *Variable) String() string { return v.Name }

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (b *BinaryOp) String() string {
	return b.renderOperand(b.L, false) + " " + b.Op.String() + " " + b.renderOperand(b.R, true)
}

// renderOperand renders a child, parenthesizing it when its precedence is
// strictly lower than the parent's, or when it is the right child of a
// non-commutative operator of equal precedence. The second clause keeps
// trees like x - (y - z) from re-associating when the parentheses are
// dropped.
func (b *BinaryOp) renderOperand(child Expression, right bool) string {
	s := child.String()
	cp := child.precedence()
	bp := b.precedence()

	if cp < bp || (right && cp == bp && !b.Op.commutative()) {
		return "(" + s + ")"
	}

	return s
}
