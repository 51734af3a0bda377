// SPDX-License-Identifier: MIT

// Package lift turns operations on crisp values into operations on graded
// values.
//
// 🚀 How lifting works
//
//	Given self {1: 5, 0.8: 3} and operand {1: 5, 0.7: 4} with "+":
//
//	  1. promote crisp operands to {1: x}
//	  2. merge level sets            → [1, 0.8, 0.7]
//	  3. walk levels in order, carrying each side's last value forward:
//	       1   : 5+5 = 10
//	       0.8 : 3+5 = 8
//	       0.7 : 3+4 = 7
//	  4. canonicalize               → {1: 10, 0.8: 8, 0.7: 7}
//
//	Step 3 is a fold: level i depends on the values resolved at level i-1,
//	so a single Apply never runs levels out of order or in parallel.
//	Independent Apply calls may run concurrently.
//
// ✨ Building blocks:
//   - Capability: the operations dispatchable on one concrete type, plus
//     the wrapper that rebuilds a typed graded value from results
//   - Registry: type → Capability, open-world (introspect on first use) or
//     closed-world (pre-registered only)
//   - OperatorTable: owned token → method table ("+" → "Add"), extensible
//     at runtime with Register
//   - Lifter: the engine (Apply, Call, Op)
//
// ⚙️ Usage:
//
//	l := lift.NewLifter(lift.NewRegistry())
//	a := graded.MustNew([]float64{1, 0.8}, []int{5, 3})
//	res, err := l.Op(ctx, "+", a, 10)  // {1: 15, 0.8: 13}
//
// Errors carry the failing level and element type (*OperationError) and
// no partial result is ever returned.
package lift
