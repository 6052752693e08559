package compat

import (
	"testing"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"gotest.tools/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func TestScoreExample(t *testing.T) {
	// A(27, [Hiking Coffee]) x B(25, [Coffee Dogs]), no location, no
	// values data: age 96*0.2 + interests 50*0.3 + values 50*0.25 = 46.7
	a := &entity.Profile{Age: 27, Interests: []string{"Hiking", "Coffee"}}
	b := &entity.Profile{Age: 25, Interests: []string{"Coffee", "Dogs"}}

	total, factors := Score(a, b)

	assert.Equal(t, total, 47)
	assert.Equal(t, len(factors), 3)
	assert.Equal(t, factors[0].Name, "age")
	assert.Equal(t, factors[0].RawScore, float64(96))
	assert.Equal(t, factors[1].Name, "interests")
	assert.Equal(t, factors[1].RawScore, float64(50))
	assert.Equal(t, factors[2].Name, "values")
	assert.Equal(t, factors[2].RawScore, float64(50))
}

func TestScoreSymmetry(t *testing.T) {
	a := &entity.Profile{
		Age:            30,
		Interests:      []string{"Art", "Music", "Wine"},
		Religion:       strPtr("buddhist"),
		PoliticalViews: strPtr("apolitical"),
		WantsChildren:  boolPtr(true),
		Longitude:      floatPtr(-122.42),
		Latitude:       floatPtr(37.77),
	}
	b := &entity.Profile{
		Age:            42,
		Interests:      []string{"Music"},
		Religion:       strPtr("none"),
		PoliticalViews: strPtr("liberal"),
		WantsChildren:  boolPtr(false),
		Longitude:      floatPtr(-122.27),
		Latitude:       floatPtr(37.80),
	}

	ab, _ := Score(a, b)
	ba, _ := Score(b, a)

	assert.Equal(t, ab, ba)
}

func TestScoreBounds(t *testing.T) {
	cases := []struct {
		name string
		a, b *entity.Profile
	}{
		{"empty", &entity.Profile{Age: 18}, &entity.Profile{Age: 100}},
		{"identical", &entity.Profile{
			Age:           25,
			Interests:     []string{"Coffee"},
			Religion:      strPtr("catholic"),
			WantsChildren: boolPtr(true),
			Longitude:     floatPtr(0),
			Latitude:      floatPtr(0),
		}, &entity.Profile{
			Age:           25,
			Interests:     []string{"Coffee"},
			Religion:      strPtr("catholic"),
			WantsChildren: boolPtr(true),
			Longitude:     floatPtr(0),
			Latitude:      floatPtr(0),
		}},
		{"opposed values", &entity.Profile{
			Age:            20,
			Religion:       strPtr("a"),
			PoliticalViews: strPtr("left"),
			WantsChildren:  boolPtr(true),
		}, &entity.Profile{
			Age:            98,
			Religion:       strPtr("b"),
			PoliticalViews: strPtr("right"),
			WantsChildren:  boolPtr(false),
		}},
	}

	for _, tc := range cases {
		total, _ := Score(tc.a, tc.b)
		if total < 0 || total > 100 {
			t.Errorf("%s: score %d out of [0,100]", tc.name, total)
		}
	}
}

func TestInterestScoreBothEmpty(t *testing.T) {
	// Defined as 0, not NaN.
	a := &entity.Profile{Age: 25}
	b := &entity.Profile{Age: 25}

	total, factors := Score(a, b)

	assert.Equal(t, factors[1].RawScore, float64(0))
	// age 100*0.2 + interests 0 + values 50*0.25 = 32.5
	assert.Equal(t, total, 33)
}

func TestInterestScoreUsesLargerList(t *testing.T) {
	a := &entity.Profile{Age: 25, Interests: []string{"A", "B", "C", "D"}}
	b := &entity.Profile{Age: 25, Interests: []string{"A", "B"}}

	_, factors := Score(a, b)

	assert.Equal(t, factors[1].RawScore, float64(50))
}

func TestLocationFactorOnlyWhenBothPresent(t *testing.T) {
	withCoords := &entity.Profile{Age: 25, Longitude: floatPtr(13.4), Latitude: floatPtr(52.5)}
	without := &entity.Profile{Age: 25}

	_, factors := Score(withCoords, without)
	for _, f := range factors {
		if f.Name == "location" {
			t.Fatal("location factor included with one-sided coordinates")
		}
	}

	_, factors = Score(withCoords, withCoords)
	assert.Equal(t, len(factors), 4)
	assert.Equal(t, factors[2].Name, "location")
	// Zero distance scores a full 100.
	assert.Equal(t, factors[2].RawScore, float64(100))
}

func TestValuesApoliticalIsNeutral(t *testing.T) {
	a := &entity.Profile{Age: 25, PoliticalViews: strPtr("apolitical")}
	b := &entity.Profile{Age: 25, PoliticalViews: strPtr("conservative")}

	_, factors := Score(a, b)

	// base 50 + 5 neutral adjustment
	assert.Equal(t, factors[2].RawScore, float64(55))
}

func TestTotalRounds(t *testing.T) {
	factors := []entity.Factor{
		{Name: "age", Weight: 0.2, RawScore: 96},
		{Name: "interests", Weight: 0.3, RawScore: 50},
		{Name: "values", Weight: 0.25, RawScore: 50},
	}

	assert.Equal(t, Total(factors), 47)
}
