// Package parallel provides the work-stealing worker pool used for batch
// queries.
package parallel
