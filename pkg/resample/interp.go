package resample

// Interp resamples values onto sampleTimes by linear interpolation between the two
// source observations bracketing each sample time.
//
// Samples at or after the last source time take the last value; there is no linear
// extrapolation. Equal source times are skipped together, so a sample landing on a
// duplicated time interpolates from the last of them. The cursor only moves while
// times[j] <= t, which keeps times[j-1] < times[j] for every bracket it settles on:
// the division is never by a zero-wide interval, whatever the input order.
func Interp[F ~float64](times []int64, values []F, sampleTimes []int64) []F {
	out := make([]F, len(sampleTimes))

	i := beforeStart(times, sampleTimes)
	j := 0
	for ; i < len(sampleTimes); i++ {
		t := sampleTimes[i]
		j = advance(times, j, t)

		if j >= len(times) {
			out[i] = values[j-1]
			continue
		}

		elapsed := F(t - times[j-1])
		span := F(times[j] - times[j-1])
		out[i] = values[j-1] + (values[j]-values[j-1])*elapsed/span
	}

	return out
}
