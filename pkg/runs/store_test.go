package runs

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAndListRuns(t *testing.T) {
	db := openTestDB(t)

	runID, err := db.CreateRun("keyness", "terms.tsv", "images", 10, 11)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("CreateRun() returned zero run ID")
	}

	if err := db.FinishRun(runID, 9, 2); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}

	runsList, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runsList) != 1 {
		t.Fatalf("ListRuns() returned %d runs, want 1", len(runsList))
	}

	r := runsList[0]
	if r.RunID != runID {
		t.Errorf("RunID = %d, want %d", r.RunID, runID)
	}
	if r.Analysis != "keyness" {
		t.Errorf("Analysis = %q, want %q", r.Analysis, "keyness")
	}
	if r.InputPath != "terms.tsv" {
		t.Errorf("InputPath = %q, want %q", r.InputPath, "terms.tsv")
	}
	if r.TopN != 10 {
		t.Errorf("TopN = %d, want 10", r.TopN)
	}
	if r.GenreCount != 11 || r.SuccessCount != 9 || r.FailedCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 11/9/2", r.GenreCount, r.SuccessCount, r.FailedCount)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestRecordOutput_Upsert(t *testing.T) {
	db := openTestDB(t)

	runID, err := db.CreateRun("radar", "topics.tsv", "images", 0, 2)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	first := Output{
		RunID:        runID,
		Genre:        "Horror",
		Status:       StatusFailed,
		ErrorType:    "empty_result",
		ErrorMessage: "no rows for genre",
	}
	if err := db.RecordOutput(first); err != nil {
		t.Fatalf("RecordOutput() error = %v", err)
	}

	// Recording the same genre again replaces the earlier outcome.
	second := Output{
		RunID:    runID,
		Genre:    "Horror",
		Status:   StatusSuccess,
		RowCount: 10,
		FilePath: "images/radar_plot_horror.png",
	}
	if err := db.RecordOutput(second); err != nil {
		t.Fatalf("RecordOutput() retry error = %v", err)
	}

	if err := db.RecordOutput(Output{RunID: runID, Genre: "Romance", Status: StatusSkipped}); err != nil {
		t.Fatalf("RecordOutput() error = %v", err)
	}

	outputs, err := db.GetRunOutputs(runID)
	if err != nil {
		t.Fatalf("GetRunOutputs() error = %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("GetRunOutputs() returned %d outputs, want 2", len(outputs))
	}

	byGenre := make(map[string]Output)
	for _, o := range outputs {
		byGenre[o.Genre] = o
	}

	horror := byGenre["Horror"]
	if horror.Status != StatusSuccess {
		t.Errorf("Horror status = %q, want %q", horror.Status, StatusSuccess)
	}
	if horror.ErrorType != "" || horror.ErrorMessage != "" {
		t.Errorf("Horror error fields = %q/%q, want cleared", horror.ErrorType, horror.ErrorMessage)
	}
	if horror.RowCount != 10 {
		t.Errorf("Horror RowCount = %d, want 10", horror.RowCount)
	}
	if horror.FilePath != "images/radar_plot_horror.png" {
		t.Errorf("Horror FilePath = %q", horror.FilePath)
	}

	if byGenre["Romance"].Status != StatusSkipped {
		t.Errorf("Romance status = %q, want %q", byGenre["Romance"].Status, StatusSkipped)
	}
}

func TestRecordOutput_UnknownRun(t *testing.T) {
	db := openTestDB(t)

	err := db.RecordOutput(Output{RunID: 999, Genre: "Horror", Status: StatusSuccess})
	if err == nil {
		t.Fatal("RecordOutput() with unknown run ID succeeded, want foreign key error")
	}
}

func TestListRuns_Order(t *testing.T) {
	db := openTestDB(t)

	first, err := db.CreateRun("keyness", "a.tsv", "images", 10, 1)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}
	second, err := db.CreateRun("keyness", "b.tsv", "images", 10, 1)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	runsList, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runsList) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runsList))
	}
	if runsList[0].RunID != second || runsList[1].RunID != first {
		t.Errorf("run order = [%d, %d], want newest first [%d, %d]",
			runsList[0].RunID, runsList[1].RunID, second, first)
	}

	limited, err := db.ListRuns(1)
	if err != nil {
		t.Fatalf("ListRuns(1) error = %v", err)
	}
	if len(limited) != 1 || limited[0].RunID != second {
		t.Errorf("ListRuns(1) = %+v, want only run %d", limited, second)
	}
}
