package storage

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/bifurc/internal/sweep"
)

func testResult() *sweep.Result {
	return &sweep.Result{Columns: []sweep.Column{
		{R: 2.8, States: []float64{0.6783168, 0.6109354}},
		{R: 3.4, States: []float64{0.8416, 0.4532}},
		{R: 4.0, States: []float64{math.Inf(1), 0.25}},
	}}
}

func testMeta() RunMetadata {
	return RunMetadata{
		Map: "logistic", X0: 0.5,
		RMin: 2.8, RMax: 4.0, RPoints: 3,
		Skip: 2, Samples: 2, Workers: 4,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Map != "logistic" {
		t.Errorf("expected map logistic, got %s", meta.Map)
	}
	if meta.Samples != 2 {
		t.Errorf("expected 2 samples, got %d", meta.Samples)
	}
}

func TestStoreLoadResultRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := testResult()
	runID, err := st.Save(testMeta(), want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load result failed: %v", err)
	}

	if len(got.Columns) != len(want.Columns) {
		t.Fatalf("expected %d columns, got %d", len(want.Columns), len(got.Columns))
	}
	for i, col := range want.Columns {
		if got.Columns[i].R != col.R {
			t.Errorf("column %d: r = %v, want %v", i, got.Columns[i].R, col.R)
		}
		for j, v := range col.States {
			if got.Columns[i].States[j] != v {
				t.Errorf("column %d sample %d: got %v, want %v", i, j, got.Columns[i].States[j], v)
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header plus one row per sample.
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if lines[0] != "r,x" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2.8,") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(buf.String(), "+Inf") {
		t.Error("expected non-finite sample to survive export")
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := testMeta()
	if err := ExportJSON(&buf, &meta, testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"map": "logistic"`) {
		t.Errorf("missing map field in %s", out)
	}
	if !strings.Contains(out, `"r": 2.8`) {
		t.Errorf("missing column in %s", out)
	}
	if !strings.Contains(out, `"+Inf"`) {
		t.Errorf("expected non-finite sample encoded as string in %s", out)
	}
}
