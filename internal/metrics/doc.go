// Package metrics derives display values from academic records: attendance
// counts and rates, cumulative course hours, period progress and status
// labels. Every function is pure and safe for concurrent use; malformed
// input degrades to zero values and fallback labels instead of errors.
package metrics
