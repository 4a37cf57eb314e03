package vibe

var (
	ratiosClassic = []float64{1, 1.5, 2, 3}
	ratiosGolden  = []float64{1, 1.618, 2.618}
)

// aliases maps alternate ids to canonical catalog ids.
var aliases = map[string]string{
	"professional": "corporate",
}

var catalog = buildCatalog()

func buildCatalog() map[string]Constraints {
	profiles := []Constraints{
		{
			ID: "minimal", Name: "Minimal",
			MinWhitespace: 60, MaxElements: 5, MinElementSpacing: 32,
			ScaleRatios: ratiosClassic, AlignmentGrid: 8,
			Symmetry: SymmetryStrict, BalanceWeight: 0.9,
			UseGoldenRatio: true,
			Preferences: Preferences{
				PreferredColumns: []int{12}, PreferredRows: []int{8},
				ElementDensity: DensitySparse,
			},
		},
		{
			ID: "modern", Name: "Modern",
			MinWhitespace: 45, MaxElements: 8, MinElementSpacing: 24,
			ScaleRatios: ratiosClassic, AlignmentGrid: 8,
			Symmetry: SymmetryLoose, BalanceWeight: 0.7,
			UseRuleOfThirds: true,
			Preferences: Preferences{
				PreferredColumns: []int{12, 6}, PreferredRows: []int{8},
				ElementDensity: DensityModerate, DecorativeElements: true,
			},
		},
		{
			ID: "bold", Name: "Bold",
			MinWhitespace: 30, MaxElements: 10, MinElementSpacing: 16,
			ScaleRatios: []float64{1, 2, 3, 4}, AlignmentGrid: 8,
			Symmetry: SymmetryAsymmetric, BalanceWeight: 0.5,
			UseRuleOfThirds: true,
			Preferences: Preferences{
				PreferredColumns: []int{6}, PreferredRows: []int{4},
				ElementDensity: DensityDense, DecorativeElements: true,
			},
		},
		{
			ID: "elegant", Name: "Elegant",
			MinWhitespace: 55, MaxElements: 6, MinElementSpacing: 32,
			ScaleRatios: ratiosGolden, AlignmentGrid: 8,
			Symmetry: SymmetryStrict, BalanceWeight: 0.9,
			UseGoldenRatio: true,
			Preferences: Preferences{
				PreferredColumns: []int{12}, PreferredRows: []int{8},
				ElementDensity: DensitySparse, DecorativeElements: true,
			},
		},
		{
			ID: "playful", Name: "Playful",
			MinWhitespace: 35, MaxElements: 12, MinElementSpacing: 12,
			ScaleRatios: ratiosClassic, AlignmentGrid: 4,
			Symmetry: SymmetryAsymmetric, BalanceWeight: 0.4,
			Preferences: Preferences{
				PreferredColumns: []int{4}, PreferredRows: []int{4},
				ElementDensity: DensityDense, DecorativeElements: true,
			},
		},
		{
			ID: "corporate", Name: "Corporate",
			MinWhitespace: 40, MaxElements: 8, MinElementSpacing: 24,
			ScaleRatios: []float64{1, 1.5, 2}, AlignmentGrid: 8,
			Symmetry: SymmetryStrict, BalanceWeight: 0.8,
			Preferences: Preferences{
				PreferredColumns: []int{12}, PreferredRows: []int{6},
				ElementDensity: DensityModerate,
			},
		},
		{
			ID: "retro", Name: "Retro",
			MinWhitespace: 35, MaxElements: 10, MinElementSpacing: 16,
			ScaleRatios: []float64{1, 2, 3}, AlignmentGrid: 8,
			Symmetry: SymmetryLoose, BalanceWeight: 0.6,
			UseRuleOfThirds: true,
			Preferences: Preferences{
				PreferredColumns: []int{3}, PreferredRows: []int{4},
				ElementDensity: DensityDense, DecorativeElements: true,
			},
		},
		{
			ID: "organic", Name: "Organic",
			MinWhitespace: 50, MaxElements: 7, MinElementSpacing: 20,
			ScaleRatios: ratiosGolden, AlignmentGrid: 4,
			Symmetry: SymmetryAsymmetric, BalanceWeight: 0.5,
			UseGoldenRatio: true, UseRuleOfThirds: true,
			Preferences: Preferences{
				PreferredColumns: []int{5}, PreferredRows: []int{5},
				ElementDensity: DensityModerate, DecorativeElements: true,
			},
		},
		{
			ID: "luxury", Name: "Luxury",
			MinWhitespace: 60, MaxElements: 5, MinElementSpacing: 40,
			ScaleRatios: ratiosGolden, AlignmentGrid: 8,
			Symmetry: SymmetryStrict, BalanceWeight: 1.0,
			UseGoldenRatio: true,
			Preferences: Preferences{
				PreferredColumns: []int{12}, PreferredRows: []int{8},
				ElementDensity: DensitySparse, DecorativeElements: true,
			},
		},
		{
			ID: "tech", Name: "Tech",
			MinWhitespace: 40, MaxElements: 10, MinElementSpacing: 16,
			ScaleRatios: ratiosClassic, AlignmentGrid: 4,
			Symmetry: SymmetryLoose, BalanceWeight: 0.6,
			UseRuleOfThirds: true,
			Preferences: Preferences{
				PreferredColumns: []int{12}, PreferredRows: []int{8},
				ElementDensity: DensityModerate, DecorativeElements: true,
			},
		},
		{
			ID: "brutalist", Name: "Brutalist",
			MinWhitespace: 30, MaxElements: 12, MinElementSpacing: 8,
			ScaleRatios: []float64{1, 2, 4}, AlignmentGrid: 16,
			Symmetry: SymmetryAsymmetric, BalanceWeight: 0.3,
			Preferences: Preferences{
				PreferredColumns: []int{2}, PreferredRows: []int{3},
				ElementDensity: DensityDense,
			},
		},
	}

	m := make(map[string]Constraints, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return m
}
