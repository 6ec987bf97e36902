package wait

import "time"

var (
	// DefaultRetryInterval is the pause between two rounds of a polled expectation.
	DefaultRetryInterval = time.Millisecond * 100
	// DefaultTimeout is how long a polled expectation is retried before it is reported as failed.
	DefaultTimeout = time.Second * 30
)
