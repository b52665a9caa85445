package selection

import "time"

// Bucket is a time-of-day window that can carry its own category
// overlay (e.g. food words in the morning).
type Bucket string

const (
	BucketMorning   Bucket = "morning"   // [5, 12)
	BucketAfternoon Bucket = "afternoon" // [12, 17)
	BucketEvening   Bucket = "evening"   // [17, 22)
	BucketNight     Bucket = "night"     // everything else
)

// BucketFor returns the bucket containing the given hour of day.
func BucketFor(hour int) Bucket {
	switch {
	case hour >= 5 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	case hour >= 17 && hour < 22:
		return BucketEvening
	default:
		return BucketNight
	}
}

// Rules maps buckets to the categories shown during that window.
type Rules map[Bucket][]string

// Categories returns the overlay category list for the bucket
// containing t, or nil when the bucket has no rule.
func (r Rules) Categories(t time.Time) []string {
	if r == nil {
		return nil
	}
	return r[BucketFor(t.Hour())]
}
