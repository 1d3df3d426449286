package records

import (
	"math"
	"slices"
	"time"
)

// Bucket is a display grouping of applications.
type Bucket string

const (
	BucketOfferReceived      Bucket = "OfferReceived"
	BucketInterviewScheduled Bucket = "InterviewScheduled"
	BucketRejected           Bucket = "Rejected"
	BucketOther              Bucket = "Other"
)

// BucketOrder is the order buckets are rendered in.
var BucketOrder = []Bucket{
	BucketOfferReceived,
	BucketInterviewScheduled,
	BucketRejected,
	BucketOther,
}

// Title is the heading shown above a bucket.
func (b Bucket) Title() string {
	switch b {
	case BucketOfferReceived:
		return "Offers"
	case BucketInterviewScheduled:
		return "Interviews"
	case BucketRejected:
		return "Rejected"
	default:
		return "Other"
	}
}

// Classify maps an application to its bucket by status.
// Pending and unknown statuses land in BucketOther.
func Classify(a Application) Bucket {
	switch a.Status {
	case StatusOfferReceived:
		return BucketOfferReceived
	case StatusInterviewScheduled:
		return BucketInterviewScheduled
	case StatusRejected:
		return BucketRejected
	default:
		return BucketOther
	}
}

// Projection holds every bucket, each sorted ascending by DateApplied.
type Projection map[Bucket][]Application

// Len is the total number of applications across buckets.
func (p Projection) Len() int {
	n := 0
	for _, b := range BucketOrder {
		n += len(p[b])
	}
	return n
}

// Project sorts a copy of apps by DateApplied (stable) and partitions it
// into buckets. All four buckets are present in the result even when empty.
// The input slice is not modified.
func Project(apps []Application) Projection {
	sorted := slices.Clone(apps)
	slices.SortStableFunc(sorted, func(a, b Application) int {
		return a.DateApplied.Compare(b.DateApplied)
	})

	p := make(Projection, len(BucketOrder))
	for _, b := range BucketOrder {
		p[b] = []Application{}
	}
	for _, a := range sorted {
		b := Classify(a)
		p[b] = append(p[b], a)
	}
	return p
}

// Hint is a display-only urgency color.
type Hint string

const (
	HintNeutral Hint = ""
	HintSuccess Hint = "success"
	HintWarning Hint = "warning"
	HintAlert   Hint = "alert"
)

// AgeDays returns whole days elapsed from applied to now, rounded down.
// Dates in the future give a negative age.
func AgeDays(applied, now time.Time) int {
	return int(math.Floor(now.Sub(applied).Hours() / 24))
}

// ColorHint derives the row color from the status, falling back to how
// long ago the application was sent.
func ColorHint(a Application, now time.Time) Hint {
	switch a.Status {
	case StatusRejected:
		return HintAlert
	case StatusOfferReceived:
		return HintSuccess
	case StatusInterviewScheduled:
		return HintWarning
	}

	switch age := AgeDays(a.DateApplied, now); {
	case age >= 14:
		return HintAlert
	case age >= 7:
		return HintWarning
	case age >= 0:
		return HintSuccess
	default:
		return HintNeutral
	}
}
