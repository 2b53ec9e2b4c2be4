package models

import (
	"errors"
	"strings"
	"testing"
)

func validPrediction() *CreatePredictionRequest {
	return &CreatePredictionRequest{
		Season:     2024,
		Week:       10,
		HomeTeam:   "Kansas City Chiefs",
		AwayTeam:   "Denver Broncos",
		HomeWin:    true,
		Confidence: 0.85,
		ModelUsed:  "RandomForest-v1",
	}
}

func validModelPackage() *CreateModelPackageRequest {
	return &CreateModelPackageRequest{
		PackageLabel:  "rf-week10",
		Model:         "gANjc2tsZWFybg==",
		ModelFeatures: []string{"points_for", "points_against"},
		ModelScores:   map[string]float64{"accuracy": 0.71},
		Dataset:       []map[string]interface{}{{"points_for": 27.0, "won": true}},
		ModelTarget:   "home_win",
		DateTrained:   "11-04-2024",
	}
}

func TestValidatePredictionOK(t *testing.T) {
	if err := ValidatePrediction(validPrediction()); err != nil {
		t.Errorf("ValidatePrediction() = %v, want nil", err)
	}
}

func TestValidatePredictionIsCorrectOptional(t *testing.T) {
	p := validPrediction()
	p.IsCorrect = nil
	if err := ValidatePrediction(p); err != nil {
		t.Errorf("nil is_correct should be valid, got %v", err)
	}

	correct := false
	p.IsCorrect = &correct
	if err := ValidatePrediction(p); err != nil {
		t.Errorf("set is_correct should be valid, got %v", err)
	}
}

func TestValidatePredictionRejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreatePredictionRequest)
		wantField string
	}{
		{"season below range", func(p *CreatePredictionRequest) { p.Season = 1919 }, "season"},
		{"season above range", func(p *CreatePredictionRequest) { p.Season = 2051 }, "season"},
		{"week zero", func(p *CreatePredictionRequest) { p.Week = 0 }, "week"},
		{"week 23", func(p *CreatePredictionRequest) { p.Week = 23 }, "week"},
		{"empty home team", func(p *CreatePredictionRequest) { p.HomeTeam = "" }, "home_team"},
		{"overlong home team", func(p *CreatePredictionRequest) { p.HomeTeam = strings.Repeat("x", 101) }, "home_team"},
		{"empty away team", func(p *CreatePredictionRequest) { p.AwayTeam = "" }, "away_team"},
		{"overlong away team", func(p *CreatePredictionRequest) { p.AwayTeam = strings.Repeat("y", 101) }, "away_team"},
		{"same teams", func(p *CreatePredictionRequest) { p.AwayTeam = p.HomeTeam }, "teams"},
		{"confidence negative", func(p *CreatePredictionRequest) { p.Confidence = -0.1 }, "confidence"},
		{"confidence above one", func(p *CreatePredictionRequest) { p.Confidence = 1.5 }, "confidence"},
		{"empty model_used", func(p *CreatePredictionRequest) { p.ModelUsed = "" }, "model_used"},
		{"overlong model_used", func(p *CreatePredictionRequest) { p.ModelUsed = strings.Repeat("m", 101) }, "model_used"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPrediction()
			tt.mutate(p)

			err := ValidatePrediction(p)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidatePredictionBoundaries(t *testing.T) {
	for _, c := range []float64{0.0, 1.0} {
		p := validPrediction()
		p.Confidence = c
		if err := ValidatePrediction(p); err != nil {
			t.Errorf("confidence %g should be valid, got %v", c, err)
		}
	}
	for _, s := range []int{1920, 2050} {
		p := validPrediction()
		p.Season = s
		if err := ValidatePrediction(p); err != nil {
			t.Errorf("season %d should be valid, got %v", s, err)
		}
	}
	for _, w := range []int{1, 18, 19, 22} {
		p := validPrediction()
		p.Week = w
		if err := ValidatePrediction(p); err != nil {
			t.Errorf("week %d should be valid, got %v", w, err)
		}
	}
}

// The same-teams rule is reported even when every other field is valid, and
// uses the combined "teams" field rather than home_team or away_team.
func TestValidatePredictionSameTeamsMessage(t *testing.T) {
	p := validPrediction()
	p.AwayTeam = "Kansas City Chiefs"

	err := ValidatePrediction(p)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "teams" {
		t.Errorf("Field = %q, want %q", verr.Field, "teams")
	}
	if !strings.Contains(verr.Error(), "different") {
		t.Errorf("message should explain teams must differ, got %q", verr.Error())
	}
}

func TestValidatePredictionFirstViolationOnly(t *testing.T) {
	p := validPrediction()
	p.Season = 1800
	p.Week = 99
	p.Confidence = 5.0

	err := ValidatePrediction(p)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "season" {
		t.Errorf("first violated field = %q, want %q", verr.Field, "season")
	}
}

func TestValidateModelPackageOK(t *testing.T) {
	if err := ValidateModelPackage(validModelPackage()); err != nil {
		t.Errorf("ValidateModelPackage() = %v, want nil", err)
	}
}

func TestValidateModelPackageEmptyCollections(t *testing.T) {
	m := validModelPackage()
	m.ModelFeatures = []string{}
	m.ModelScores = map[string]float64{}
	m.Dataset = nil

	if err := ValidateModelPackage(m); err != nil {
		t.Errorf("empty features/scores/dataset should be valid, got %v", err)
	}
}

func TestValidateModelPackageDuplicateFeatures(t *testing.T) {
	m := validModelPackage()
	m.ModelFeatures = []string{"points_for", "points_for"}

	if err := ValidateModelPackage(m); err != nil {
		t.Errorf("duplicate feature names should be valid, got %v", err)
	}
}

func TestValidateModelPackageRejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateModelPackageRequest)
		wantField string
	}{
		{"empty label", func(m *CreateModelPackageRequest) { m.PackageLabel = "" }, "package_label"},
		{"overlong label", func(m *CreateModelPackageRequest) { m.PackageLabel = strings.Repeat("l", 101) }, "package_label"},
		{"empty model", func(m *CreateModelPackageRequest) { m.Model = "" }, "model"},
		{"empty target", func(m *CreateModelPackageRequest) { m.ModelTarget = "" }, "model_target"},
		{"empty date", func(m *CreateModelPackageRequest) { m.DateTrained = "" }, "date_trained"},
		{"iso date", func(m *CreateModelPackageRequest) { m.DateTrained = "2024-11-04" }, "date_trained"},
		{"garbage date", func(m *CreateModelPackageRequest) { m.DateTrained = "not-a-date" }, "date_trained"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModelPackage()
			tt.mutate(m)

			err := ValidateModelPackage(m)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidationDoesNotMutate(t *testing.T) {
	p := validPrediction()
	before := *p
	_ = ValidatePrediction(p)
	if *p != before {
		t.Error("ValidatePrediction mutated its candidate")
	}
}
