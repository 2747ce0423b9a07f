package prediction

import "context"

// Repository provides persistence operations for predictions.
type Repository interface {
	Create(ctx context.Context, p *Prediction) error
	List(ctx context.Context) ([]Prediction, error)
}

// Client calls the external price model. Implementations must report
// network failures and malformed bodies as errors; a returned estimate
// is always a usable number.
type Client interface {
	Predict(ctx context.Context, features FeatureSet) (float64, error)
}
