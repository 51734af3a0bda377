// SPDX-License-Identifier: MIT

// Package levels defines level sets: the validated, strictly descending
// sequences of confidence degrees in (0,1] that index a graded value.
//
// 🚀 What is a level set?
//
//	A level (alpha) is a real number in (0,1]. A level set is an ordered
//	list of unique levels, strictly descending, that always contains 1.0:
//
//	  [1.0, 0.8, 0.5]   ✔
//	  [0.8, 0.5]        ✘ (no 1.0)
//	  [1.0, 0.5, 0.8]   ✘ (not descending)
//
// ✨ Key features:
//   - Validate: fail-fast checks, never a partially accepted set
//   - Merge: O(|a|+|b|) two-pointer union that keeps descending order
//   - MergeAll: left fold of pairwise merges (membership is order-independent)
//
// ⚙️ Usage:
//
//	a, _ := levels.New(1, 0.8, 0.4)
//	b, _ := levels.New(1, 0.95, 0.2, 0.1)
//	u := levels.Merge(a, b) // [1 0.95 0.8 0.4 0.2 0.1]
//
// All errors match ErrValidation through errors.Is.
package levels
