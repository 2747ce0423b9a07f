package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/estatoai/estato/internal/domain/prediction"
)

// PredictionRepository implements prediction.Repository for SQLite.
// Feature payloads are stored as a JSON document alongside the scalar
// columns, mirroring the document shape the model consumed.
type PredictionRepository struct {
	db *DB
}

// NewPredictionRepository creates a new PredictionRepository.
func NewPredictionRepository(db *DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Create inserts a new prediction record.
func (r *PredictionRepository) Create(ctx context.Context, p *prediction.Prediction) error {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("encoding features: %w", err)
	}

	query, args, err := sq.Insert("predictions").
		Columns("id", "location", "predicted_price", "features", "created_at").
		Values(p.ID, p.Location, p.PredictedPrice, string(features), p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("building prediction insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create prediction: %w", err)
	}
	return nil
}

// List returns all stored predictions.
func (r *PredictionRepository) List(ctx context.Context) ([]prediction.Prediction, error) {
	query, _, err := sq.Select("id", "location", "predicted_price", "features", "created_at").
		From("predictions").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building prediction list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []prediction.Prediction
	for rows.Next() {
		var p prediction.Prediction
		var location sql.NullString
		var features string
		var createdAt sql.NullTime
		if err := rows.Scan(&p.ID, &location, &p.PredictedPrice, &features, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		p.Location = location.String
		if createdAt.Valid {
			p.CreatedAt = createdAt.Time
		}
		// A corrupt features document degrades to zero values rather than
		// failing the whole read.
		_ = json.Unmarshal([]byte(features), &p.Features)
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prediction rows: %w", err)
	}
	return predictions, nil
}
