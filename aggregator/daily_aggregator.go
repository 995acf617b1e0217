package aggregator

import "time"

// Sample is one forecast interval reduced to a single metric value.
type Sample struct {
	Timestamp time.Time
	Value     float64
}

// DayBucket holds the min/max of a metric across all samples sharing a UTC date.
type DayBucket struct {
	Date time.Time `json:"date"`
	Min  float64   `json:"min"`
	Max  float64   `json:"max"`
}

// DateOf truncates t to midnight of its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Aggregate reduces items into one DayBucket per distinct UTC date.
// Buckets keep the order in which their date first appears in items.
func Aggregate[T any](items []T, timestamp func(T) time.Time, metric func(T) float64) []DayBucket {
	buckets := make([]DayBucket, 0)
	index := make(map[time.Time]int)

	for _, item := range items {
		date := DateOf(timestamp(item))
		value := metric(item)

		i, seen := index[date]
		if !seen {
			// first sample of the day sets both ends
			index[date] = len(buckets)
			buckets = append(buckets, DayBucket{Date: date, Min: value, Max: value})
			continue
		}

		if value < buckets[i].Min {
			buckets[i].Min = value
		}
		if value > buckets[i].Max {
			buckets[i].Max = value
		}
	}

	return buckets
}

// AggregateSamples is Aggregate over plain samples.
func AggregateSamples(samples []Sample) []DayBucket {
	return Aggregate(samples,
		func(s Sample) time.Time { return s.Timestamp },
		func(s Sample) float64 { return s.Value },
	)
}
