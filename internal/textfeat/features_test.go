package textfeat

import (
	"strings"
	"testing"

	"go-jobpost-verifier/pkg/models"
)

func TestExtractShortTextReturnsZeroVector(t *testing.T) {
	ex := NewExtractor(DefaultLexicon())

	for _, text := range []string{"", "   ", "abc", "gaji 5jt"} {
		t.Run("short", func(t *testing.T) {
			fv := ex.Extract(text)
			if fv.Length != 0 || fv.WordCount != 0 {
				t.Errorf("expected zero counts, got length=%d words=%d", fv.Length, fv.WordCount)
			}
			if fv.LanguageQuality != models.QualityPoor {
				t.Errorf("expected poor quality, got %s", fv.LanguageQuality)
			}
			if len(fv.SuspiciousPatterns) != 0 {
				t.Errorf("expected no suspicious patterns, got %v", fv.SuspiciousPatterns)
			}
			if fv.Salary.Found {
				t.Error("expected no salary flags on short text")
			}
		})
	}
}

func TestExtractProfessionalPosting(t *testing.T) {
	ex := NewExtractor(DefaultLexicon())
	text := "PT Maju Jaya membutuhkan staff admin. Kualifikasi: pengalaman minimal 1 tahun, " +
		"pendidikan SMA sederajat. Hubungi email hrd@majujaya.co.id untuk melamar posisi ini."

	fv := ex.Extract(text)

	if !fv.HasEmail {
		t.Error("expected email to be detected")
	}
	if !fv.HasCompany {
		t.Error("expected company indicator")
	}
	if fv.CompletenessScore != 100 {
		t.Errorf("expected completeness 100, got %.0f", fv.CompletenessScore)
	}
	if got := fv.EssentialElements; !got.CompanyName || !got.JobTitle || !got.Requirements || !got.ContactInfo {
		t.Errorf("expected all essential elements, got %+v", got)
	}
	if len(fv.SuspiciousPatterns) != 0 {
		t.Errorf("expected no suspicious patterns, got %v", fv.SuspiciousPatterns)
	}
	if fv.GenuineKeywords == 0 {
		t.Error("expected genuine keyword hits")
	}
}

func TestExtractScamHeavyPosting(t *testing.T) {
	ex := NewExtractor(DefaultLexicon())
	text := "GAJI BESAR JUTAAN, WA 08123456789, KERJA DARI RUMAH TANPA PENGALAMAN"

	fv := ex.Extract(text)

	if !fv.HasPhone {
		t.Error("expected phone number to be detected")
	}
	if !fv.HasMoneyPromise {
		t.Error("expected money-promise indicator")
	}
	if !fv.HasNoExperience {
		t.Error("expected no-experience indicator")
	}
	if fv.Salary.Tier != models.RiskHigh && fv.Salary.Tier != models.RiskCritical {
		t.Errorf("expected salary tier high or critical, got %s", fv.Salary.Tier)
	}
	if len(fv.SuspiciousPatterns) == 0 {
		t.Error("expected suspicious patterns to be reported")
	}
	if fv.UppercaseRatio < 0.9 {
		t.Errorf("expected near-total uppercase ratio, got %.2f", fv.UppercaseRatio)
	}
}

func TestExtractMissingContact(t *testing.T) {
	ex := NewExtractor(DefaultLexicon())
	text := "Dicari tenaga produksi untuk pabrik. Syarat usia maksimal 30 tahun dan sehat jasmani rohani."

	fv := ex.Extract(text)

	if fv.EssentialElements.ContactInfo {
		t.Fatal("expected contact info to be absent")
	}
	found := false
	for _, p := range fv.SuspiciousPatterns {
		if strings.Contains(p, "contact") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing-contact pattern, got %v", fv.SuspiciousPatterns)
	}
}

func TestLanguageQualityTiers(t *testing.T) {
	tests := []struct {
		professional int
		suspicious   int
		want         models.LanguageQuality
	}{
		{5, 0, models.QualityExcellent},
		{6, 0, models.QualityExcellent},
		{5, 1, models.QualityGood},
		{3, 1, models.QualityGood},
		{2, 2, models.QualityFair},
		{2, 3, models.QualityPoor},
		{1, 0, models.QualityPoor},
		{0, 5, models.QualityPoor},
	}
	for _, tt := range tests {
		if got := languageQuality(tt.professional, tt.suspicious); got != tt.want {
			t.Errorf("languageQuality(%d, %d) = %s, want %s", tt.professional, tt.suspicious, got, tt.want)
		}
	}
}

func TestCompleteness(t *testing.T) {
	tests := []struct {
		elements models.EssentialElements
		want     float64
	}{
		{models.EssentialElements{}, 0},
		{models.EssentialElements{CompanyName: true}, 25},
		{models.EssentialElements{CompanyName: true, JobTitle: true}, 50},
		{models.EssentialElements{CompanyName: true, JobTitle: true, Requirements: true, ContactInfo: true}, 100},
	}
	for _, tt := range tests {
		if got := completeness(tt.elements); got != tt.want {
			t.Errorf("completeness(%+v) = %.0f, want %.0f", tt.elements, got, tt.want)
		}
	}
}
