package journal

import (
	"encoding/csv"
	"io"
	"os"
	"time"
)

var csvHeader = []string{"id", "time", "kind", "input", "result", "error"}

// WriteCSV writes recs with a header row.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{
			r.ID,
			r.Time.UTC().Format(time.RFC3339Nano),
			r.Kind,
			r.Input,
			r.Result,
			r.Error,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the whole journal to path.
func ExportCSV(j Journal, path string) (int, error) {
	recs, err := j.List()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := WriteCSV(f, recs); err != nil {
		f.Close()
		return 0, err
	}
	return len(recs), f.Close()
}
