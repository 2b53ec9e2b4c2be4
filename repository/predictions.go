package repository

import (
	"context"
	"errors"
	"fmt"

	"nfl-predictions-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const predictionsCollection = "nfl_predictions"

// PredictionRepository owns the nfl_predictions collection. Every operation
// is a single round-trip against the store; writes are atomic per document.
type PredictionRepository struct {
	coll *mongo.Collection
}

func NewPredictionRepository(db *mongo.Database) *PredictionRepository {
	return &PredictionRepository{coll: db.Collection(predictionsCollection)}
}

type predictionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Season     int                `bson:"season"`
	Week       int                `bson:"week"`
	HomeTeam   string             `bson:"home_team"`
	AwayTeam   string             `bson:"away_team"`
	HomeWin    bool               `bson:"home_win"`
	Confidence float64            `bson:"confidence"`
	ModelUsed  string             `bson:"model_used"`
	IsCorrect  *bool              `bson:"is_correct"`
}

func newPredictionDoc(req *models.CreatePredictionRequest) predictionDoc {
	return predictionDoc{
		Season:     req.Season,
		Week:       req.Week,
		HomeTeam:   req.HomeTeam,
		AwayTeam:   req.AwayTeam,
		HomeWin:    req.HomeWin,
		Confidence: req.Confidence,
		ModelUsed:  req.ModelUsed,
		IsCorrect:  req.IsCorrect,
	}
}

func (d predictionDoc) record() models.Prediction {
	return models.Prediction{
		PredID:     EncodeID(d.ID),
		Season:     d.Season,
		Week:       d.Week,
		HomeTeam:   d.HomeTeam,
		AwayTeam:   d.AwayTeam,
		HomeWin:    d.HomeWin,
		Confidence: d.Confidence,
		ModelUsed:  d.ModelUsed,
		IsCorrect:  d.IsCorrect,
	}
}

// PredictionFilter holds the optional list criteria. Season and week match
// exactly; Team matches either home_team or away_team. All supplied criteria
// are AND'd together.
type PredictionFilter struct {
	Season *int
	Week   *int
	Team   string
}

func (f PredictionFilter) IsZero() bool {
	return f.Season == nil && f.Week == nil && f.Team == ""
}

// Query builds the MongoDB filter document.
func (f PredictionFilter) Query() bson.M {
	q := bson.M{}
	if f.Season != nil {
		q["season"] = *f.Season
	}
	if f.Week != nil {
		q["week"] = *f.Week
	}
	if f.Team != "" {
		q["$or"] = bson.A{
			bson.M{"home_team": f.Team},
			bson.M{"away_team": f.Team},
		}
	}
	return q
}

// Create validates the candidate, inserts it and returns the stored record
// with its newly assigned identifier.
func (r *PredictionRepository) Create(ctx context.Context, req *models.CreatePredictionRequest) (*models.Prediction, error) {
	if err := models.ValidatePrediction(req); err != nil {
		return nil, err
	}

	doc := newPredictionDoc(req)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: error creating prediction: %v", ErrStore, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected inserted id type %T", ErrStore, res.InsertedID)
	}
	doc.ID = oid

	rec := doc.record()
	return &rec, nil
}

// Get returns the prediction with the given external id.
func (r *PredictionRepository) Get(ctx context.Context, id string) (*models.Prediction, error) {
	oid, err := DecodeID(id)
	if err != nil {
		return nil, err
	}

	var doc predictionDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: prediction with id: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	rec := doc.record()
	return &rec, nil
}

// List returns predictions matching the filter, in store order. Zero rows is
// reported as ErrNotFound for filtered and unfiltered calls alike; clients
// depend on the 404 they see for an empty result.
func (r *PredictionRepository) List(ctx context.Context, filter PredictionFilter) ([]models.Prediction, error) {
	cur, err := r.coll.Find(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	var docs []predictionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if len(docs) == 0 {
		if filter.IsZero() {
			return nil, fmt.Errorf("%w: no predictions exist", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: no predictions match the given parameters", ErrNotFound)
	}

	records := make([]models.Prediction, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.record())
	}
	return records, nil
}

// Update fully replaces the record at id after revalidating the candidate.
// The original identifier is preserved. Replaying the same update yields the
// same stored state.
func (r *PredictionRepository) Update(ctx context.Context, id string, req *models.CreatePredictionRequest) (*models.Prediction, error) {
	oid, err := DecodeID(id)
	if err != nil {
		return nil, err
	}
	if err := models.ValidatePrediction(req); err != nil {
		return nil, err
	}

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var doc predictionDoc
	err = r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, newPredictionDoc(req), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: prediction with id: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	rec := doc.record()
	return &rec, nil
}

// Delete removes the record at id. Deleting an id that is already gone
// deterministically reports ErrNotFound.
func (r *PredictionRepository) Delete(ctx context.Context, id string) error {
	oid, err := DecodeID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: prediction with id: %s", ErrNotFound, id)
	}
	return nil
}

// DeleteAll empties the collection. Test support, mirroring the deleteall
// endpoint.
func (r *PredictionRepository) DeleteAll(ctx context.Context) error {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: no predictions deleted", ErrNotFound)
	}
	return nil
}
