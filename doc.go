// Package gradual is your toolkit for graded values: families of values
// indexed by levels in (0,1], where level 1.0 is the coarsest view and
// lower levels refine it.
//
// 🚀 What is gradual?
//
//	A small, concurrency-safe library that brings together:
//		• Level sets: validation and descending two-pointer merge
//		• Graded values: immutable, deep-copied, canonical (squashed) form
//		• Lifting: apply any operation of the underlying type level-wise
//		• Batch runs: one external program invocation per level
//		• Rendering: "RL-<Type>" tables
//
// ✨ Why choose gradual?
//
//   - Explicit – capabilities are declared or introspected, never guessed
//   - Deterministic – fixed operand and level order, no partial results
//   - Owned state – registries and operator tables are values you inject
//
// Under the hood, everything is organized under these subpackages:
//
//	levels/   — level-set validation and merge
//	graded/   — Value[T], canonicalization, rendering
//	lift/     — capability registry, operator table, lifting engine
//	batch/    — per-level program execution
//	levelio/  — level/input file format
//	config/   — YAML runtime configuration
//	cmd/rlrun — command-line front end
//
// Quick example:
//
//	{1: 5, 0.8: 3} + {1: 5, 0.7: 4}  =  {1: 10, 0.8: 8, 0.7: 7}
//
//	go get github.com/katalvlaran/gradual
package gradual
