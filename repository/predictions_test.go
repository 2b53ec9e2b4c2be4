package repository

import (
	"context"
	"errors"
	"testing"

	"nfl-predictions-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repositories with no collection wired: any store round-trip would panic,
// so these tests prove malformed identifiers are rejected before the store
// is touched.
func TestPredictionRepositoryRejectsInvalidIDBeforeStore(t *testing.T) {
	r := &PredictionRepository{}
	ctx := context.Background()

	if _, err := r.Get(ctx, "not-a-valid-id-format"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Get error = %v, want ErrInvalidID", err)
	}
	if _, err := r.Update(ctx, "not-a-valid-id-format", &models.CreatePredictionRequest{}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Update error = %v, want ErrInvalidID", err)
	}
	if err := r.Delete(ctx, "not-a-valid-id-format"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Delete error = %v, want ErrInvalidID", err)
	}
}

func TestModelPackageRepositoryRejectsInvalidIDBeforeStore(t *testing.T) {
	r := &ModelPackageRepository{}
	ctx := context.Background()

	if _, err := r.Get(ctx, "xyz"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Get error = %v, want ErrInvalidID", err)
	}
	if _, err := r.Update(ctx, "xyz", &models.CreateModelPackageRequest{}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Update error = %v, want ErrInvalidID", err)
	}
	if err := r.Delete(ctx, "xyz"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Delete error = %v, want ErrInvalidID", err)
	}
}

// An invalid candidate on a malformed id reports the id first: decode runs
// before validation so the store key check is never skipped.
func TestUpdateDecodesBeforeValidating(t *testing.T) {
	r := &PredictionRepository{}

	_, err := r.Update(context.Background(), "bad-id", &models.CreatePredictionRequest{Season: 1800})
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("error = %v, want ErrInvalidID", err)
	}
}

func TestPredictionDocRoundTrip(t *testing.T) {
	correct := true
	req := &models.CreatePredictionRequest{
		Season:     2024,
		Week:       10,
		HomeTeam:   "Kansas City Chiefs",
		AwayTeam:   "Denver Broncos",
		HomeWin:    true,
		Confidence: 0.85,
		ModelUsed:  "RandomForest-v1",
		IsCorrect:  &correct,
	}

	doc := newPredictionDoc(req)
	if !doc.ID.IsZero() {
		t.Error("new document should not carry an id; the store assigns it")
	}

	doc.ID = primitive.NewObjectID()
	rec := doc.record()

	if rec.PredID != EncodeID(doc.ID) {
		t.Errorf("PredID = %q, want %q", rec.PredID, EncodeID(doc.ID))
	}
	if rec.Season != req.Season || rec.Week != req.Week {
		t.Errorf("season/week = %d/%d, want %d/%d", rec.Season, rec.Week, req.Season, req.Week)
	}
	if rec.HomeTeam != req.HomeTeam || rec.AwayTeam != req.AwayTeam {
		t.Errorf("teams = %q/%q, want %q/%q", rec.HomeTeam, rec.AwayTeam, req.HomeTeam, req.AwayTeam)
	}
	if rec.HomeWin != req.HomeWin || rec.Confidence != req.Confidence || rec.ModelUsed != req.ModelUsed {
		t.Errorf("record = %+v, fields differ from request %+v", rec, req)
	}
	if rec.IsCorrect == nil || *rec.IsCorrect != correct {
		t.Errorf("IsCorrect = %v, want %v", rec.IsCorrect, correct)
	}
}

func TestPredictionDocNilIsCorrect(t *testing.T) {
	doc := newPredictionDoc(&models.CreatePredictionRequest{
		Season:     2024,
		Week:       1,
		HomeTeam:   "a",
		AwayTeam:   "b",
		Confidence: 0.5,
		ModelUsed:  "m",
	})
	doc.ID = primitive.NewObjectID()

	if rec := doc.record(); rec.IsCorrect != nil {
		t.Errorf("IsCorrect = %v, want nil until the game concludes", rec.IsCorrect)
	}
}

func TestModelPackageDocRoundTrip(t *testing.T) {
	req := &models.CreateModelPackageRequest{
		PackageLabel:  "rf-week10",
		Model:         "gANjc2tsZWFybg==",
		ModelFeatures: []string{"points_for", "points_for", "points_against"},
		ModelScores:   map[string]float64{"accuracy": 0.71, "f1": 0.68},
		Dataset: []map[string]interface{}{
			{"points_for": 27.0, "won": true},
			{"weather": "snow"},
		},
		ModelTarget: "home_win",
		DateTrained: "11-04-2024",
	}

	doc := newModelPackageDoc(req)
	doc.ID = primitive.NewObjectID()
	rec := doc.record()

	if rec.PackageID != EncodeID(doc.ID) {
		t.Errorf("PackageID = %q, want %q", rec.PackageID, EncodeID(doc.ID))
	}
	if rec.Model != req.Model {
		t.Errorf("Model = %q, want the opaque payload verbatim", rec.Model)
	}
	// Feature order and duplicates survive
	if len(rec.ModelFeatures) != 3 || rec.ModelFeatures[0] != "points_for" || rec.ModelFeatures[1] != "points_for" {
		t.Errorf("ModelFeatures = %v, want order and duplicates preserved", rec.ModelFeatures)
	}
	if len(rec.Dataset) != 2 {
		t.Errorf("Dataset rows = %d, want 2", len(rec.Dataset))
	}
	if rec.DateTrained != "11-04-2024" {
		t.Errorf("DateTrained = %q, want %q verbatim", rec.DateTrained, "11-04-2024")
	}
}
