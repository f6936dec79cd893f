package lexorank

import (
	"bufio"
	"io"
	"strings"
)

// Decoder reads ranks from a stream with one rank per line. Blank lines are
// skipped and surrounding whitespace is ignored.
type Decoder struct {
	s    *bufio.Scanner
	line int
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		s: bufio.NewScanner(r),
	}
}

// Decode reads the next rank. It returns io.EOF when the stream is
// exhausted.
func (d *Decoder) Decode(r *Rank) (err error) {
	for d.s.Scan() {
		d.line++

		text := strings.TrimSpace(d.s.Text())
		if text == "" {
			continue
		}

		v, err := Parse(text)
		if err != nil {
			return err
		}

		*r = v

		return nil
	}

	if err = d.s.Err(); err != nil {
		return err
	}

	return io.EOF
}

// Line returns the number of lines read so far. After a failed Decode it is
// the line holding the invalid rank.
func (d *Decoder) Line() int {
	return d.line
}

// DecodeAll reads ranks until the end of the stream.
func (d *Decoder) DecodeAll() (ranks []Rank, err error) {
	for {
		var r Rank

		err = d.Decode(&r)
		if err == io.EOF {
			return ranks, nil
		}
		if err != nil {
			return ranks, err
		}

		ranks = append(ranks, r)
	}
}

// Encoder writes ranks to a stream with one rank per line.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes a rank followed by a newline.
func (e *Encoder) Encode(r Rank) (err error) {
	_, err = io.WriteString(e.w, r.String()+"\n")

	return err
}
