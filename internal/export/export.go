// Package export writes inspection results to JSON for downstream
// tooling.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/samplescope/internal/view"
)

type StatsData struct {
	Source  string                    `json:"source"`
	Items   int                       `json:"items"`
	Columns map[int]*view.ColumnStats `json:"columns"`
}

func Stats(path, source string, insp *view.ColumnInspector) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeStats(file, source, insp)
}

func StatsStdout(source string, insp *view.ColumnInspector) error {
	return writeStats(os.Stdout, source, insp)
}

func writeStats(w io.Writer, source string, insp *view.ColumnInspector) error {
	data := StatsData{
		Source:  source,
		Items:   insp.Count(),
		Columns: insp.Stats(),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
