// Package lexorank generates and compares lexicographically sortable rank
// strings.
//
// A rank positions an item in a list. New ranks can always be made before,
// after, or between existing ones without touching their neighbours, and
// ranks sort correctly as plain strings so they can be stored in any text
// column and ordered by the database.
//
// Format
//
// A rank is written as a bucket id, a separator, and a base 36 fixed point
// decimal whose integer part is zero padded to six digits:
//
//  | Rank         | Bucket | Decimal   |
//  |--------------|--------|-----------|
//  | 0|000000:    | 0      | 0         |
//  | 0|0i0000:    | 0      | i0000     |
//  | 0|0i0000:i   | 0      | i0000:i   |
//  | 0|hzzzzz:    | 0      | hzzzzz    |
//  | 1|zzzzzz:    | 1      | zzzzzz    |
//  |--------------|--------|-----------|
//
// The radix point ':' is always present and fractional digits never end in
// zero, so the string of a rank is unique and orders the same way as the
// bucket followed by the decimal.
//
// Buckets
//
// There are three buckets which rotate 0 -> 1 -> 2 -> 0. When the ranks in a
// list become too long an external process can rewrite them, evenly spaced,
// into the next bucket. Every rank in the new bucket sorts after every rank in
// the old one, so the list stays ordered while the migration runs.
package lexorank
