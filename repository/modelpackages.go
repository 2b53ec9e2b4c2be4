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

const modelPackagesCollection = "ml_models"

// ModelPackageRepository owns the ml_models collection. The serialized model
// payload and the dataset rows pass through uninterpreted.
type ModelPackageRepository struct {
	coll *mongo.Collection
}

func NewModelPackageRepository(db *mongo.Database) *ModelPackageRepository {
	return &ModelPackageRepository{coll: db.Collection(modelPackagesCollection)}
}

type modelPackageDoc struct {
	ID            primitive.ObjectID       `bson:"_id,omitempty"`
	PackageLabel  string                   `bson:"package_label"`
	Model         string                   `bson:"model"`
	ModelFeatures []string                 `bson:"model_features"`
	ModelScores   map[string]float64       `bson:"model_scores"`
	Dataset       []map[string]interface{} `bson:"dataset"`
	ModelTarget   string                   `bson:"model_target"`
	DateTrained   string                   `bson:"date_trained"`
}

func newModelPackageDoc(req *models.CreateModelPackageRequest) modelPackageDoc {
	return modelPackageDoc{
		PackageLabel:  req.PackageLabel,
		Model:         req.Model,
		ModelFeatures: req.ModelFeatures,
		ModelScores:   req.ModelScores,
		Dataset:       req.Dataset,
		ModelTarget:   req.ModelTarget,
		DateTrained:   req.DateTrained,
	}
}

func (d modelPackageDoc) record() models.ModelPackage {
	return models.ModelPackage{
		PackageID:     EncodeID(d.ID),
		PackageLabel:  d.PackageLabel,
		Model:         d.Model,
		ModelFeatures: d.ModelFeatures,
		ModelScores:   d.ModelScores,
		Dataset:       d.Dataset,
		ModelTarget:   d.ModelTarget,
		DateTrained:   d.DateTrained,
	}
}

// ModelPackageFilter holds the optional list criteria, AND'd when both are
// supplied. DateTrained is an exact string match on the MM-DD-YYYY value.
type ModelPackageFilter struct {
	DateTrained string
	Label       string
}

func (f ModelPackageFilter) IsZero() bool {
	return f.DateTrained == "" && f.Label == ""
}

// Query builds the MongoDB filter document.
func (f ModelPackageFilter) Query() bson.M {
	q := bson.M{}
	if f.DateTrained != "" {
		q["date_trained"] = f.DateTrained
	}
	if f.Label != "" {
		q["package_label"] = f.Label
	}
	return q
}

// Create validates the candidate, inserts it and returns the stored record
// with its newly assigned identifier.
func (r *ModelPackageRepository) Create(ctx context.Context, req *models.CreateModelPackageRequest) (*models.ModelPackage, error) {
	if err := models.ValidateModelPackage(req); err != nil {
		return nil, err
	}

	doc := newModelPackageDoc(req)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: error creating package: %v", ErrStore, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected inserted id type %T", ErrStore, res.InsertedID)
	}
	doc.ID = oid

	rec := doc.record()
	return &rec, nil
}

// Get returns the model package with the given external id.
func (r *ModelPackageRepository) Get(ctx context.Context, id string) (*models.ModelPackage, error) {
	oid, err := DecodeID(id)
	if err != nil {
		return nil, err
	}

	var doc modelPackageDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: model package with id: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	rec := doc.record()
	return &rec, nil
}

// List returns model packages matching the filter, in store order. Zero rows
// is reported as ErrNotFound, same as the prediction listing.
func (r *ModelPackageRepository) List(ctx context.Context, filter ModelPackageFilter) ([]models.ModelPackage, error) {
	cur, err := r.coll.Find(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	var docs []modelPackageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if len(docs) == 0 {
		if filter.IsZero() {
			return nil, fmt.Errorf("%w: no model packages exist", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: no model packages match the given parameters", ErrNotFound)
	}

	records := make([]models.ModelPackage, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.record())
	}
	return records, nil
}

// Update fully replaces the record at id after revalidating the candidate,
// preserving the original identifier.
func (r *ModelPackageRepository) Update(ctx context.Context, id string, req *models.CreateModelPackageRequest) (*models.ModelPackage, error) {
	oid, err := DecodeID(id)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateModelPackage(req); err != nil {
		return nil, err
	}

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var doc modelPackageDoc
	err = r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, newModelPackageDoc(req), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: model package with id: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	rec := doc.record()
	return &rec, nil
}

// Delete removes the record at id. Repeated deletes report ErrNotFound.
func (r *ModelPackageRepository) Delete(ctx context.Context, id string) error {
	oid, err := DecodeID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: model package with id: %s", ErrNotFound, id)
	}
	return nil
}
