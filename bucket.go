package lexorank

import (
	"fmt"

	"github.com/calebcase/lexorank/numeral"
)

// Bucket is one of three rotating namespaces for ranks. Rebalancing schemes
// move every rank of a crowded bucket into the next bucket to regain room
// for interpolation.
type Bucket uint8

// Buckets
const (
	Bucket0 Bucket = iota
	Bucket1
	Bucket2

	bucketCount = 3
)

// Buckets returns all buckets in rotation order.
func Buckets() []Bucket {
	return []Bucket{Bucket0, Bucket1, Bucket2}
}

// ResolveBucket returns the bucket with the given id.
func ResolveBucket(id int) (b Bucket, err error) {
	if id < 0 || id >= bucketCount {
		return 0, ErrUnknownBucket.New("%d", id)
	}

	return Bucket(id), nil
}

// ParseBucket returns the bucket written as s.
func ParseBucket(s string) (b Bucket, err error) {
	if len(s) != 1 {
		return 0, ErrUnknownBucket.New("%q", s)
	}

	d, err := numeral.ToDigit(s[0])
	if err != nil || d >= bucketCount {
		return 0, ErrUnknownBucket.New("%q", s)
	}

	return Bucket(d), nil
}

// Valid returns true if b is one of the three buckets.
func (b Bucket) Valid() bool {
	return b < bucketCount
}

// Next returns the following bucket: 0 -> 1 -> 2 -> 0.
func (b Bucket) Next() Bucket {
	return (b + 1) % bucketCount
}

// Prev returns the preceding bucket: 0 -> 2 -> 1 -> 0.
func (b Bucket) Prev() Bucket {
	return (b + bucketCount - 1) % bucketCount
}

// String returns the single character id of the bucket.
func (b Bucket) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Bucket(%d)", uint8(b))
	}

	return string(numeral.MustChar(int(b)))
}
