// Package metric measures declines of a value series from its high-water mark.
package metric
