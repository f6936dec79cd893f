package lexorank

import (
	"database/sql/driver"
	"sort"
)

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() (data []byte, err error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(data []byte) (err error) {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}

	*r = v

	return nil
}

// Value implements driver.Valuer. Ranks are stored as their canonical
// string so that the database orders them correctly.
func (r Rank) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *Rank) Scan(src interface{}) (err error) {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	}

	return ErrInvalidFormat.New("cannot scan %T", src)
}

// Sort orders ranks ascending in place.
func Sort(ranks []Rank) {
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Less(ranks[j])
	})
}
