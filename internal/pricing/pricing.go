package pricing

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"agrastra/internal/marketerrors"
	model "agrastra/internal/models"
)

// mspTable holds the minimum support price per quintal for supported crops.
// Reference values only; the auction ledger does not consult them.
var mspTable = map[string]float64{
	"wheat":     2125,
	"rice":      1940,
	"sugarcane": 290,
	"cotton":    5515,
	"maize":     1870,
	"barley":    1735,
}

// fallbackBasePrice seeds trend generation for crops without an MSP entry.
const fallbackBasePrice = 2000

// PriceService answers MSP lookups and serves mock market-trend series
type PriceService struct {
	now func() time.Time
}

// NewPriceService creates a new PriceService instance
func NewPriceService() *PriceService {
	return &PriceService{now: time.Now}
}

// MSP returns the minimum support price for a crop, case-insensitive
func (p *PriceService) MSP(crop string) (float64, error) {
	price, ok := mspTable[strings.ToLower(crop)]
	if !ok {
		return 0, fmt.Errorf("pricing: %w - no MSP entry for crop %q", marketerrors.ErrInvalidArgument, crop)
	}
	return price, nil
}

// AllMSP returns a copy of the full MSP table
func (p *PriceService) AllMSP() map[string]float64 {
	out := make(map[string]float64, len(mspTable))
	for crop, price := range mspTable {
		out[crop] = price
	}
	return out
}

// Trends returns a mock daily price series for a crop over the given period
// (1d, 7d or 30d). The series is seeded per crop and day so repeated reads
// within the same day agree.
func (p *PriceService) Trends(crop, period string) ([]model.TrendPoint, error) {
	var daysBack int
	switch period {
	case "1d":
		daysBack = 1
	case "7d", "":
		daysBack = 7
	case "30d":
		daysBack = 30
	default:
		return nil, fmt.Errorf("pricing: %w - unknown period %q", marketerrors.ErrInvalidArgument, period)
	}

	base := fallbackBasePrice
	if price, ok := mspTable[strings.ToLower(crop)]; ok {
		base = int(price)
	}

	today := p.now().UTC().Truncate(24 * time.Hour)
	points := make([]model.TrendPoint, 0, daysBack+1)
	for i := daysBack; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		rng := rand.New(rand.NewSource(daySeed(crop, day)))
		variance := (rng.Float64() - 0.5) * 0.1 // within ±5% of base
		points = append(points, model.TrendPoint{
			Date:   day.Format("2006-01-02"),
			Price:  float64(int(float64(base)*(1+variance) + 0.5)),
			Volume: rng.Intn(1000) + 500,
		})
	}
	return points, nil
}

// daySeed derives a stable RNG seed from the crop name and calendar day.
func daySeed(crop string, day time.Time) int64 {
	seed := day.Unix()
	for _, r := range strings.ToLower(crop) {
		seed = seed*31 + int64(r)
	}
	return seed
}
