// Package compat computes the 0-100 compatibility score between two
// dating profiles from weighted factors. Scoring is pure: no I/O, no
// side effects, and Score(a, b) == Score(b, a).
package compat

import (
	"math"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
)

const (
	weightAge       = 0.2
	weightInterests = 0.3
	weightLocation  = 0.25
	weightValues    = 0.25

	earthRadiusKm = 6371
)

// Score returns the rounded weighted total and the ordered factor list
// it was derived from. The location factor is only included when both
// profiles carry coordinates; the remaining weights are not
// renormalized in that case, matching the historical behavior the rest
// of the system depends on.
func Score(a, b *entity.Profile) (int, []entity.Factor) {
	factors := []entity.Factor{
		{Name: "age", Weight: weightAge, RawScore: ageScore(a.Age, b.Age)},
		{Name: "interests", Weight: weightInterests, RawScore: interestScore(a.Interests, b.Interests)},
	}

	if a.HasCoordinates() && b.HasCoordinates() {
		km := haversineKm(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude)
		factors = append(factors, entity.Factor{
			Name:     "location",
			Weight:   weightLocation,
			RawScore: math.Max(0, 100-2*km),
		})
	}

	factors = append(factors, entity.Factor{
		Name:     "values",
		Weight:   weightValues,
		RawScore: valuesScore(a, b),
	})

	return Total(factors), factors
}

// Total is the score invariant: the weighted sum of the factor list,
// rounded to the nearest integer. Anything that changes the factors
// must go back through this.
func Total(factors []entity.Factor) int {
	var sum float64
	for _, f := range factors {
		sum += f.RawScore * f.Weight
	}
	return int(math.Round(sum))
}

func ageScore(ageA, ageB int) float64 {
	diff := ageA - ageB
	if diff < 0 {
		diff = -diff
	}
	return math.Max(0, float64(100-2*diff))
}

func interestScore(a, b []string) float64 {
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return 0
	}

	seen := make(map[string]bool, len(a))
	for _, interest := range a {
		seen[interest] = true
	}

	common := 0
	for _, interest := range b {
		if seen[interest] {
			common++
		}
	}

	return 100 * float64(common) / float64(larger)
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

const politicalNeutral = "apolitical"

func valuesScore(a, b *entity.Profile) float64 {
	score := 50.0

	if a.Religion != nil && b.Religion != nil {
		if *a.Religion == *b.Religion {
			score += 20
		} else {
			score -= 10
		}
	}

	if a.PoliticalViews != nil && b.PoliticalViews != nil {
		switch {
		case *a.PoliticalViews == *b.PoliticalViews:
			score += 15
		case *a.PoliticalViews == politicalNeutral || *b.PoliticalViews == politicalNeutral:
			score += 5
		default:
			score -= 10
		}
	}

	if a.WantsChildren != nil && b.WantsChildren != nil {
		if *a.WantsChildren == *b.WantsChildren {
			score += 15
		} else {
			score -= 20
		}
	}

	return math.Max(0, math.Min(100, score))
}
