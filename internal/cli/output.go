package cli

import (
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/lexorank"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type record struct {
	Rank    string `json:"rank" yaml:"rank"`
	Bucket  string `json:"bucket" yaml:"bucket"`
	Decimal string `json:"decimal" yaml:"decimal"`
}

func newRecord(r lexorank.Rank) record {
	return record{
		Rank:    r.String(),
		Bucket:  r.Bucket().String(),
		Decimal: r.Decimal().String(),
	}
}

// write renders ranks to w in the configured output format.
func (a *app) write(w io.Writer, ranks ...lexorank.Rank) (err error) {
	format := a.v.GetString(KeyOutput)

	if format == OutputText {
		e := lexorank.NewEncoder(w)
		for _, r := range ranks {
			err = e.Encode(r)
			if err != nil {
				return err
			}
		}

		return nil
	}

	records := make([]record, 0, len(ranks))
	for _, r := range ranks {
		records = append(records, newRecord(r))
	}

	var data []byte

	switch format {
	case OutputJSON:
		data, err = json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}

		data = append(data, '\n')
	case OutputYAML:
		data, err = yaml.Marshal(records)
		if err != nil {
			return err
		}
	default:
		return Error.New("unknown output format: %q", format)
	}

	_, err = w.Write(data)

	return err
}
