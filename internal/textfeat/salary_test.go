package textfeat

import (
	"testing"

	"go-jobpost-verifier/pkg/models"
)

func TestSalaryDetector(t *testing.T) {
	d := NewSalaryDetector()

	tests := []struct {
		name      string
		text      string
		wantFound bool
		wantTier  models.RiskTier
		minAmount float64
	}{
		{
			name:     "no salary talk",
			text:     "butuh admin kantor untuk cabang bandung",
			wantTier: models.RiskNone,
		},
		{
			name:      "exaggeration without figures",
			text:      "gaji besar jutaan kerja dari rumah",
			wantFound: true,
			wantTier:  models.RiskHigh,
		},
		{
			name:      "critical rupiah amount",
			text:      "dapatkan rp 75 juta per bulan",
			wantFound: true,
			wantTier:  models.RiskCritical,
			minAmount: 75,
		},
		{
			name:      "modest range stays medium",
			text:      "gaji 5 juta - 8 juta tergantung pengalaman",
			wantFound: true,
			wantTier:  models.RiskMedium,
			minAmount: 8,
		},
		{
			name:      "high absolute amount",
			text:      "gaji 25 juta langsung cair",
			wantFound: true,
			wantTier:  models.RiskHigh,
			minAmount: 25,
		},
		{
			name:      "open ended promise",
			text:      "penghasilan hingga 30 juta sebulan",
			wantFound: true,
			wantTier:  models.RiskHigh,
			minAmount: 30,
		},
		{
			name:      "income exaggeration",
			text:      "penghasilan fantastis tiap minggu",
			wantFound: true,
			wantTier:  models.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := d.Detect(tt.text)
			if flags.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", flags.Found, tt.wantFound)
			}
			if flags.Tier != tt.wantTier {
				t.Errorf("Tier = %s, want %s", flags.Tier, tt.wantTier)
			}
			if flags.Amount < tt.minAmount {
				t.Errorf("Amount = %.0f, want at least %.0f", flags.Amount, tt.minAmount)
			}
			if tt.wantFound && len(flags.Patterns) == 0 {
				t.Error("expected pattern descriptions")
			}
		})
	}
}

func TestSalaryTierMonotonicAboveFifty(t *testing.T) {
	d := NewSalaryDetector()
	// 50 juta parsed via the absolute-amount pattern must never rank below high
	flags := d.Detect("gaji 50 juta tiap bulan")
	if !flags.Found {
		t.Fatal("expected a match")
	}
	if tierRank(flags.Tier) < tierRank(models.RiskHigh) {
		t.Errorf("tier %s ranks below high for amount %.0f", flags.Tier, flags.Amount)
	}
}
