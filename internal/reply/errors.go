package reply

import "errors"

var (
	// ErrEmptyReply means a provider responded but produced no usable text
	ErrEmptyReply = errors.New("provider returned an empty reply")

	// ErrReviewTextRequired means the inbound request had no review text
	ErrReviewTextRequired = errors.New("reviewText is required")
)
