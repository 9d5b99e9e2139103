package resample

import "github.com/raykavin/tsutil/pkg/core"

// Step resamples values onto sampleTimes holding the latest value observed at or
// before each sample time.
func Step[T core.Word](times []int64, values []T, sampleTimes []int64) []T {
	out := make([]T, len(sampleTimes))

	i := beforeStart(times, sampleTimes)
	j := 0
	for ; i < len(sampleTimes); i++ {
		j = advance(times, j, sampleTimes[i])
		out[i] = values[j-1]
	}

	return out
}

// beforeStart returns the index of the first sample at or after times[0].
// Every sample before it keeps the zero value.
func beforeStart(times, sampleTimes []int64) int {
	if len(times) == 0 {
		return len(sampleTimes)
	}

	i := 0
	for i < len(sampleTimes) && sampleTimes[i] < times[0] {
		i++
	}
	return i
}

// advance moves the cursor j past every source time not exceeding t.
// On return times[j-1] <= t and, when j < len(times), t < times[j].
func advance(times []int64, j int, t int64) int {
	for j < len(times) && times[j] <= t {
		j++
	}
	return j
}
