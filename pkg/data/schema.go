package data

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	LabelName    string
}

// NewSchema builds a Schema for the given feature columns and label column.
func NewSchema(featureNames []string, labelName string) Schema {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return Schema{FeatureNames: names, LabelName: labelName}
}

// NumFeatures returns the number of numeric columns.
func (s Schema) NumFeatures() int { return len(s.FeatureNames) }
