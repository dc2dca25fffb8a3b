// Package metrics turns raw CSV text into dashboard metrics.
//
// Extraction runs in three pure stages:
//
//  1. Parse splits the text into a header row and data rows, producing a
//     [Table] whose rows map header names to trimmed cell text.
//  2. Analyze inspects every column and keeps the numeric ones, computing
//     aggregates, a first-to-last trend and a unit inferred from the header.
//  3. ExtractTable selects the headline metrics, builds an optional time
//     series and writes a one-line summary of the trends.
//
// [Extract] runs all three stages. Nothing in this package holds state
// between calls, so callers may run extractions concurrently.
//
// # Numeric columns
//
// A column is numeric when at least one of its cells parses as a finite
// number. Cells that do not parse are skipped rather than reported:
//
//	Region,Sales
//	North,100
//	South,n/a      <- ignored for Sales
//	East,250
//
// # Units
//
// Units come from the header name alone, first match wins:
//
//	price, cost, revenue -> "$"
//	percent, rate        -> "%"
//	quantity, count      -> "units"
package metrics
