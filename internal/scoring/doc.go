// Package scoring implements the transcript scoring engine: readability
// (Flesch-Kincaid grade level), speaking rate, and extraction of the
// score annotations embedded in AI coaching feedback.
//
// Everything in this package is pure and deterministic: the same inputs
// always produce the same SessionMetrics, there is no hidden clock or
// random state, and no locking is needed for concurrent use.
package scoring
