// Package updatepercent implements the "Update completion percent" use case
// following Vertical Feature Slice architecture.
//
// Only PercentCompleted is changed. Marking an item as done is the same command with 100 percent.
package updatepercent
