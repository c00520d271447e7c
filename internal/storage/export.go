package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/bifurc/internal/sweep"
)

// jsonFloat keeps non-finite samples representable: encoding/json rejects
// Inf and NaN, so they serialize as the strings "+Inf", "-Inf", "NaN".
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

type ExportData struct {
	Map     string         `json:"map"`
	X0      float64        `json:"x0"`
	RMin    float64        `json:"r_min"`
	RMax    float64        `json:"r_max"`
	RPoints int            `json:"r_points"`
	Skip    int            `json:"skip"`
	Samples int            `json:"samples"`
	Columns []ExportColumn `json:"columns"`
}

type ExportColumn struct {
	R      float64     `json:"r"`
	States []jsonFloat `json:"states"`
}

// ExportJSON writes a run as indented JSON, one column object per control
// value in sweep order.
func ExportJSON(w io.Writer, meta *RunMetadata, result *sweep.Result) error {
	data := ExportData{
		Map:     meta.Map,
		X0:      meta.X0,
		RMin:    meta.RMin,
		RMax:    meta.RMax,
		RPoints: meta.RPoints,
		Skip:    meta.Skip,
		Samples: meta.Samples,
		Columns: make([]ExportColumn, len(result.Columns)),
	}
	for i, col := range result.Columns {
		states := make([]jsonFloat, len(col.States))
		for j, v := range col.States {
			states[j] = jsonFloat(v)
		}
		data.Columns[i] = ExportColumn{R: col.R, States: states}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the flat r,x sample rows in sweep order.
func ExportCSV(w io.Writer, result *sweep.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"r", "x"}); err != nil {
		return err
	}
	for _, col := range result.Columns {
		r := strconv.FormatFloat(col.R, 'g', -1, 64)
		for _, v := range col.States {
			if err := cw.Write([]string{r, strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
