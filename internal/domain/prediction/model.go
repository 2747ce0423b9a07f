package prediction

import (
	"fmt"
	"time"
)

// FeatureSet carries the 23 named inputs the price model expects.
// Field names match the model's wire contract exactly.
type FeatureSet struct {
	PropertyType              string  `json:"PropertyType"`
	PlotSizeMarla             float64 `json:"PlotSizeMarla"`
	CoveredAreaSqrFt          float64 `json:"CoveredAreaSqrFt"`
	BedRooms                  int     `json:"BedRooms"`
	BathRooms                 int     `json:"BathRooms"`
	PropertyCondition         string  `json:"PropertyCondition"`
	AgeofPropertyYears        int     `json:"AgeofPropertyYears"`
	Floors                    string  `json:"Floors"`
	BuildType                 string  `json:"BuildType"`
	Sector                    string  `json:"Sector"`
	Block                     string  `json:"Block"`
	Latitude                  float64 `json:"Latitude"`
	Longitude                 float64 `json:"Longitude"`
	Parking                   string  `json:"Parking"`
	Elevator                  string  `json:"Elevator"`
	Security                  string  `json:"Security"`
	PowerBackup               string  `json:"PowerBackup"`
	Furnished                 string  `json:"Furnished"`
	NearSchool                string  `json:"NearSchool"`
	NearHospital              string  `json:"NearHospital"`
	NearPark                  string  `json:"NearPark"`
	NearMosque                string  `json:"NearMosque"`
	Distance2CommercialAreaKM float64 `json:"Distance2CommercialAreaKM"`
}

// Location formats the display location for a feature set.
func (f FeatureSet) Location() string {
	return fmt.Sprintf("B-17 Sector %s, Block %s", f.Sector, f.Block)
}

// Prediction is a stored price estimate produced by the model.
type Prediction struct {
	ID             string     `json:"id"`
	Location       string     `json:"location"`
	PredictedPrice float64    `json:"predicted_price"`
	Features       FeatureSet `json:"features"`
	CreatedAt      time.Time  `json:"created_at"`
}
