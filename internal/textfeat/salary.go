package textfeat

import (
	"regexp"
	"strconv"

	"go-jobpost-verifier/pkg/models"
)

type salaryPattern struct {
	re          *regexp.Regexp
	tier        models.RiskTier
	description string
	// 1-based capture groups holding a numeric amount in millions
	amountGroups []int
}

// SalaryDetector matches Indonesian monetary-promise phrasing against an
// ordered pattern set and reports the worst severity found.
type SalaryDetector struct {
	patterns []salaryPattern
}

func NewSalaryDetector() *SalaryDetector {
	return &SalaryDetector{patterns: []salaryPattern{
		{
			re:           regexp.MustCompile(`(?:gaji|penghasilan|salary)\s*(?:per\s*bulan|bulanan|sebulan)?\s*(?:rp\.?|rupiah)?\s*([1-9]\d+)\s*(?:juta|jt|million)`),
			tier:         models.RiskHigh,
			description:  "Suspiciously high salary amount",
			amountGroups: []int{1},
		},
		{
			re:           regexp.MustCompile(`(?:gaji|penghasilan|salary)\s*(?:rp\.?|rupiah)?\s*(\d+(?:\.\d+)?)\s*(?:juta|jt)?\s*-\s*(?:rp\.?|rupiah)?\s*(\d+(?:\.\d+)?)\s*(?:juta|jt|million)`),
			tier:         models.RiskMedium,
			description:  "Salary range with inflated upper bound",
			amountGroups: []int{1, 2},
		},
		{
			re:           regexp.MustCompile(`(?:gaji|penghasilan|salary)\s*(?:hingga|sampai|up\s*to)\s*(?:rp\.?|rupiah)?\s*(\d+(?:\.\d+)?)\s*(?:juta|jt|million)`),
			tier:         models.RiskHigh,
			description:  "Open-ended salary promise",
			amountGroups: []int{1},
		},
		{
			re:          regexp.MustCompile(`gaji\s*(?:besar|tinggi|fantastis|menggiurkan|jutaan|lumayan|menarik|wow|dahsyat|luar\s*biasa|menggoda)`),
			tier:        models.RiskHigh,
			description: "Salary exaggeration without figures",
		},
		{
			re:          regexp.MustCompile(`(?:penghasilan|income|pendapatan)\s*(?:besar|tinggi|fantastis|menggiurkan|jutaan|lumayan|menarik|wow|dahsyat)`),
			tier:        models.RiskHigh,
			description: "Income exaggeration without figures",
		},
		{
			re:          regexp.MustCompile(`(?:mudah|gampang|cepat)\s*(?:dapat|dapet|meraih)\s*(?:gaji|penghasilan|uang)\s*(?:besar|tinggi|jutaan)`),
			tier:        models.RiskHigh,
			description: "Easy-money phrasing",
		},
		{
			re:           regexp.MustCompile(`(?:rp\.?|rupiah)\s*([5-9]\d|[1-9]\d{2})\s*(?:juta|jt|million)`),
			tier:         models.RiskCritical,
			description:  "Extreme salary amount (50+ million)",
			amountGroups: []int{1},
		},
	}}
}

func tierRank(t models.RiskTier) int {
	switch t {
	case models.RiskCritical:
		return 3
	case models.RiskHigh:
		return 2
	case models.RiskMedium:
		return 1
	default:
		return 0
	}
}

// Detect scans lowercased text and returns the aggregated salary flags.
// The reported tier is the maximum across matches, and is never below high
// when a parsed amount reaches 50 million.
func (d *SalaryDetector) Detect(lower string) models.SalaryFlags {
	flags := models.SalaryFlags{Tier: models.RiskNone, Patterns: []string{}}
	for _, p := range d.patterns {
		matches := p.re.FindAllStringSubmatch(lower, -1)
		if len(matches) == 0 {
			continue
		}
		flags.Found = true
		flags.Count += len(matches)
		flags.Patterns = append(flags.Patterns, p.description)
		if tierRank(p.tier) > tierRank(flags.Tier) {
			flags.Tier = p.tier
		}
		for _, m := range matches {
			for _, g := range p.amountGroups {
				if g < len(m) {
					if amount, err := strconv.ParseFloat(m[g], 64); err == nil && amount > flags.Amount {
						flags.Amount = amount
					}
				}
			}
		}
	}
	if flags.Amount >= 50 && tierRank(flags.Tier) < tierRank(models.RiskHigh) {
		flags.Tier = models.RiskHigh
	}
	return flags
}
