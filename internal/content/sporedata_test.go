package content

import (
	"testing"

	"spawnsmart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDifficulty(t *testing.T) {
	tests := []struct {
		name string
		raw  SporeRecord
		want domain.Difficulty
	}{
		{
			name: "growing conditions mention beginner",
			raw:  SporeRecord{GrowingConditions: "Beginner-friendly; warm and humid."},
			want: domain.DifficultyBeginner,
		},
		{
			name: "growing conditions mention advanced",
			raw:  SporeRecord{GrowingConditions: "Advanced; needs strict humidity control."},
			want: domain.DifficultyAdvanced,
		},
		{
			name: "growing conditions mention challenging",
			raw:  SporeRecord{GrowingConditions: "A challenging strain for patient growers."},
			want: domain.DifficultyAdvanced,
		},
		{
			name: "other conditions default to intermediate",
			raw:  SporeRecord{GrowingConditions: "Prefers hardwood substrates."},
			want: domain.DifficultyIntermediate,
		},
		{
			name: "known beginner variety without conditions",
			raw:  SporeRecord{Subtype: "Golden Teacher"},
			want: domain.DifficultyBeginner,
		},
		{
			name: "known advanced variety without conditions",
			raw:  SporeRecord{Subtype: "Penis Envy"},
			want: domain.DifficultyAdvanced,
		},
		{
			name: "unknown variety without conditions",
			raw:  SporeRecord{Subtype: "Mystery Cap"},
			want: domain.DifficultyIntermediate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveDifficulty(tt.raw))
		})
	}
}

func TestDeriveSporeType(t *testing.T) {
	assert.Equal(t, domain.SporeCyanescens, deriveSporeType(SporeRecord{MushroomType: "Psilocybe cyanescens"}))
	assert.Equal(t, domain.SporeGourmet, deriveSporeType(SporeRecord{MushroomType: "Gourmet"}))
	assert.Equal(t, domain.SporeMedicinal, deriveSporeType(SporeRecord{MushroomType: "Medicinal"}))
	assert.Equal(t, domain.SporeGourmet, deriveSporeType(SporeRecord{MushroomType: "Other", Subtype: "blue oyster"}))
	assert.Equal(t, domain.SporeCubensis, deriveSporeType(SporeRecord{MushroomType: "Psilocybe cubensis"}))
}

func TestColonizationForDifficulty(t *testing.T) {
	assert.Equal(t, "10-14 days", colonizationForDifficulty(domain.DifficultyBeginner))
	assert.Equal(t, "14-21 days", colonizationForDifficulty(domain.DifficultyIntermediate))
	assert.Equal(t, "21-30 days", colonizationForDifficulty(domain.DifficultyAdvanced))
}

func TestStaticSporeData(t *testing.T) {
	spores := staticSporeData()
	require.NotEmpty(t, spores)

	var goldenTeacher *domain.SporeVariety
	for i := range spores {
		if spores[i].Name == "Golden Teacher" {
			goldenTeacher = &spores[i]
		}
	}
	require.NotNil(t, goldenTeacher)
	assert.Equal(t, domain.DifficultyBeginner, goldenTeacher.Difficulty)
	assert.Equal(t, "10-14 days", goldenTeacher.ColonizationTime)
	assert.Equal(t, domain.SporeCubensis, goldenTeacher.Type)
	assert.Equal(t, []string{"PNW Spore Co."}, goldenTeacher.Suppliers)
	assert.NotEmpty(t, goldenTeacher.Description)
}

func TestConsolidateSpores(t *testing.T) {
	spores := []domain.SporeVariety{
		{Name: "Golden Teacher", Type: domain.SporeCubensis, Suppliers: []string{"A"}},
		{Name: "Golden Teacher", Type: domain.SporeCubensis, Suppliers: []string{"B", "A"}},
		{Name: "Blue Oyster", Type: domain.SporeGourmet, Suppliers: []string{"C"}},
	}

	out := consolidateSpores(spores)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"A", "B"}, out[0].Suppliers)
	assert.Equal(t, []string{"C"}, out[1].Suppliers)
}
