// SPDX-License-Identifier: MIT

// Package graded implements graded values: immutable mappings from the
// levels of a level set to values of a single type, plus the canonical
// form every operation result is reduced to.
//
// 🚀 What is a graded value?
//
//	A graded value is a decreasing family of approximations indexed by a
//	confidence level in (0,1]. Level 1.0 holds the most certain value;
//	finer levels override it, and a level that is absent inherits the
//	nearest coarser value (extend-forward):
//
//	  {1.0: 5, 0.8: 3}   →  Get(0.9, prev) = prev,  Get(0.8, prev) = 3
//
// ✨ Key features:
//   - Value[T]: validated, deep-copied, immutable storage
//   - Canonicalize: drop levels that repeat the previous kept value,
//     always keep level 1.0, collapse a single survivor to a crisp T
//   - Graded: type-erased view used by the lifting engine
//   - Table: "RL-<Type>" rendering with Level/Object columns
//
// ⚙️ Usage:
//
//	v, err := graded.New([]float64{1, 0.8}, []int{5, 3})
//	res, err := graded.Canonicalize(pairs)
//	if x, ok := res.Crisp(); ok { ... }
//
// Construction never squashes: only operation results are canonicalized.
package graded
