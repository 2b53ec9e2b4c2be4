package models

import (
	"fmt"
	"time"
)

const (
	MinSeason = 1920
	MaxSeason = 2050
	MinWeek   = 1
	MaxWeek   = 22

	maxTextLen = 100

	// DateTrainedLayout is the MM-DD-YYYY wire format for ModelPackage.DateTrained.
	DateTrainedLayout = "01-02-2006"
)

// ValidationError reports the first rule a candidate violated. Field names
// the offending field ("teams" for the cross-field home/away check).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidatePrediction checks a create/replace candidate against the
// prediction rules. It is pure: no store access, no mutation. The first
// violated rule is returned; a nil error means the candidate is well formed.
func ValidatePrediction(p *CreatePredictionRequest) error {
	if p.Season < MinSeason || p.Season > MaxSeason {
		return &ValidationError{
			Field:  "season",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinSeason, MaxSeason, p.Season),
		}
	}
	if p.Week < MinWeek || p.Week > MaxWeek {
		return &ValidationError{
			Field:  "week",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinWeek, MaxWeek, p.Week),
		}
	}
	if err := checkText("home_team", p.HomeTeam); err != nil {
		return err
	}
	if err := checkText("away_team", p.AwayTeam); err != nil {
		return err
	}
	if p.HomeTeam == p.AwayTeam {
		return &ValidationError{
			Field:  "teams",
			Reason: "home_team and away_team must be different",
		}
	}
	if p.Confidence < 0.0 || p.Confidence > 1.0 {
		return &ValidationError{
			Field:  "confidence",
			Reason: fmt.Sprintf("must be between 0.0 and 1.0, got %g", p.Confidence),
		}
	}
	if err := checkText("model_used", p.ModelUsed); err != nil {
		return err
	}
	return nil
}

// ValidateModelPackage checks a create/replace candidate against the model
// package rules. Empty model_features, model_scores and dataset are valid;
// only the text fields and the training date format are constrained.
func ValidateModelPackage(m *CreateModelPackageRequest) error {
	if err := checkText("package_label", m.PackageLabel); err != nil {
		return err
	}
	if m.Model == "" {
		return &ValidationError{Field: "model", Reason: "must not be empty"}
	}
	if m.ModelTarget == "" {
		return &ValidationError{Field: "model_target", Reason: "must not be empty"}
	}
	if _, err := time.Parse(DateTrainedLayout, m.DateTrained); err != nil {
		return &ValidationError{
			Field:  "date_trained",
			Reason: fmt.Sprintf("must be formatted as MM-DD-YYYY, got %q", m.DateTrained),
		}
	}
	return nil
}

func checkText(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(value) > maxTextLen {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be at most %d characters, got %d", maxTextLen, len(value)),
		}
	}
	return nil
}
