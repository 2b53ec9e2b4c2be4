package models

// ModelPackage is one trained model artifact plus its metadata. Model holds
// the serialized model as opaque base64 text; Dataset rows are arbitrary
// key/value mappings stored and returned verbatim.
type ModelPackage struct {
	PackageID     string                   `json:"package_id"`
	PackageLabel  string                   `json:"package_label"`
	Model         string                   `json:"model"`
	ModelFeatures []string                 `json:"model_features"`
	ModelScores   map[string]float64       `json:"model_scores"`
	Dataset       []map[string]interface{} `json:"dataset"`
	ModelTarget   string                   `json:"model_target"`
	DateTrained   string                   `json:"date_trained"`
}

// CreateModelPackageRequest is the payload for creating or fully replacing a
// model package. DateTrained uses the MM-DD-YYYY format and is stored exactly
// as given.
type CreateModelPackageRequest struct {
	PackageLabel  string                   `json:"package_label"`
	Model         string                   `json:"model"`
	ModelFeatures []string                 `json:"model_features"`
	ModelScores   map[string]float64       `json:"model_scores"`
	Dataset       []map[string]interface{} `json:"dataset"`
	ModelTarget   string                   `json:"model_target"`
	DateTrained   string                   `json:"date_trained"`
}
