// SPDX-License-Identifier: MIT
// File: operators.go
// Role: owned token → method table used by Lifter.Op.
// Extension:
//   - Register appends to the table at runtime; it never touches the
//     capabilities, so a new token only works on types declaring the method.

package lift

import (
	"fmt"
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Operator maps a token to the method it dispatches to.
type Operator struct {
	Token  string
	Method string
	Arity  Arity // SelfOnly (unary operator) or 1 (binary operator)
}

// OperatorTable is a concurrency-safe, mutable operator table.
type OperatorTable struct {
	mu  sync.RWMutex
	ops map[string]Operator
}

// defaultOperators lists the tokens understood out of the box.
var defaultOperators = []Operator{
	{Token: "+", Method: "Add", Arity: 1},
	{Token: "-", Method: "Sub", Arity: 1},
	{Token: "*", Method: "Mul", Arity: 1},
	{Token: "/", Method: "Div", Arity: 1},
	{Token: "%", Method: "Mod", Arity: 1},
	{Token: "&", Method: "And", Arity: 1},
	{Token: "|", Method: "Or", Arity: 1},
	{Token: "^", Method: "Xor", Arity: 1},
	{Token: "==", Method: "Equal", Arity: 1},
	{Token: "<", Method: "Less", Arity: 1},
	{Token: ">", Method: "Greater", Arity: 1},
	{Token: "neg", Method: "Neg", Arity: SelfOnly},
	{Token: "abs", Method: "Abs", Arity: SelfOnly},
	{Token: "not", Method: "Not", Arity: SelfOnly},
}

// DefaultOperators returns a fresh table holding the default tokens.
func DefaultOperators() *OperatorTable {
	t, _ := NewOperatorTable(defaultOperators...)
	return t
}

// NewOperatorTable returns a table holding ops.
func NewOperatorTable(ops ...Operator) (*OperatorTable, error) {
	t := &OperatorTable{ops: make(map[string]Operator, len(ops))}
	for _, op := range ops {
		if err := t.Register(op); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Register appends op.
//
// Errors (all ErrInvalidOperator):
//   - empty token or token containing whitespace;
//   - method that is not an exported Go identifier;
//   - arity other than SelfOnly or 1;
//   - token already present.
func (t *OperatorTable) Register(op Operator) error {
	if err := validateOperator(op); err != nil {
		return liftErrorf("Register", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.ops[op.Token]; ok {
		return liftErrorf("Register", fmt.Errorf("%w: token %q already registered", ErrInvalidOperator, op.Token))
	}
	t.ops[op.Token] = op

	return nil
}

// Lookup returns the operator registered for token.
func (t *OperatorTable) Lookup(token string) (Operator, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	op, ok := t.ops[token]

	return op, ok
}

// Tokens returns the registered tokens, sorted.
func (t *OperatorTable) Tokens() []string {
	t.mu.RLock()
	out := make([]string, 0, len(t.ops))
	for tok := range t.ops {
		out = append(out, tok)
	}
	t.mu.RUnlock()
	sort.Strings(out)

	return out
}

func validateOperator(op Operator) error {
	if op.Token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidOperator)
	}
	for _, r := range op.Token {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: token %q contains whitespace", ErrInvalidOperator, op.Token)
		}
	}
	if !isExportedIdent(op.Method) {
		return fmt.Errorf("%w: method %q is not an exported identifier", ErrInvalidOperator, op.Method)
	}
	if op.Arity != SelfOnly && op.Arity != 1 {
		return fmt.Errorf("%w: arity %d (want 0 or 1)", ErrInvalidOperator, op.Arity)
	}

	return nil
}

func isExportedIdent(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if s == "" || !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}
