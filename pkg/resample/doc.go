// Package resample aligns a value series observed on one time axis onto another.
//
// Both kernels walk the source and sample axes with a single forward cursor each,
// so they run in O(n + sn) and require both axes to be non-decreasing. A decreasing
// sample axis is not detected here and silently produces wrong values; callers that
// cannot guarantee the order should validate it first (see core.IsNonDecreasing).
//
// Samples strictly before the first source time resolve to the zero value. Samples at
// or after the last source time hold the last observed value. An empty source series
// resolves every sample to the zero value.
package resample
