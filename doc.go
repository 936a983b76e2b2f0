// Package strata is a toolbox for balancing class distributions of
// machine-learning sample sets before training.
//
// 🚀 What is strata?
//
//	A small, pure-Go library plus CLI:
//		• Grouping: partition samples by label, first-occurrence order on demand
//		• Counting: label frequencies
//		• Stratification: up-sampling and down-sampling to equal label sizes
//		• Column mapping: transform selected positions of fixed-arity samples
//		• Configuration: JSON/YAML files resolved across a search path
//
// ✨ Why strata?
//
//   - Reproducible – every stochastic call takes an explicit *rand.Rand
//   - Pure – inputs are never mutated, no hidden globals
//   - Explicit errors – sentinel errors, checked with errors.Is
//
// Subpackages:
//
//	sampling/     — GroupBy, CountLabels, Upsample, Downsample, MapColumns, RNG helpers
//	config/       — JSON/YAML load & save, search path, typed BalanceConfig
//	csvio/        — CSV ⇄ sampling.Sample
//	cmd/stratify/ — command-line front end (cobra + zap)
//
//	go get github.com/katalvlaran/strata
package strata
