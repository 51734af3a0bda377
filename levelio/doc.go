// SPDX-License-Identifier: MIT

// Package levelio reads level/input files:
//
//	1 0.8
//	input1
//	input2
//
// Lines are trimmed and blank lines are skipped. The first remaining line
// holds whitespace-separated levels; every further line is the input for
// the level at the same position. All failures match levels.ErrValidation.
package levelio
