package textfeat

import (
	"strings"

	"go-jobpost-verifier/pkg/models"
)

// AnalyzeKeywords scores the text against the Indonesian legitimate,
// suspicious and neutral lists. Suspicious hits weigh heavier than
// legitimate ones so sparse scam phrasing is not drowned out by boilerplate.
func (e *Extractor) AnalyzeKeywords(text string) models.KeywordAnalysis {
	lower := strings.ToLower(text)

	found := map[string][]string{
		"legitimate": findHits(lower, e.lexicon.Legitimate),
		"suspicious": findHits(lower, e.lexicon.Suspicious),
		"neutral":    findHits(lower, e.lexicon.Neutral),
	}

	ka := models.KeywordAnalysis{
		LegitimateScore: float64(len(found["legitimate"])) * 2.0,
		SuspiciousScore: float64(len(found["suspicious"])) * 2.5,
		NeutralScore:    float64(len(found["neutral"])),
		TotalKeywords:   len(found["legitimate"]) + len(found["suspicious"]) + len(found["neutral"]),
		FoundKeywords:   found,
	}

	switch {
	case ka.TotalKeywords == 0:
		ka.Analysis = "Tidak ditemukan kata kunci yang relevan"
		ka.Recommendation = "Teks terlalu pendek atau tidak berhubungan dengan lowongan kerja"
	case ka.SuspiciousScore > ka.LegitimateScore*1.5:
		ka.Analysis = "Teks didominasi kata kunci yang sering muncul pada penipuan lowongan kerja"
		ka.Recommendation = "Hindari lowongan ini dan jangan memberikan data pribadi atau uang"
	case ka.LegitimateScore > ka.SuspiciousScore*2:
		ka.Analysis = "Teks didominasi kata kunci lowongan kerja yang sah"
		ka.Recommendation = "Indikasi lowongan asli, tetap verifikasi perusahaan melalui kanal resmi"
	default:
		ka.Analysis = "Teks mengandung campuran kata kunci sah dan mencurigakan"
		ka.Recommendation = "Perlu verifikasi lebih lanjut sebelum melamar"
	}
	return ka
}

func emptyKeywordAnalysis() models.KeywordAnalysis {
	return models.KeywordAnalysis{
		FoundKeywords:  map[string][]string{"legitimate": {}, "suspicious": {}, "neutral": {}},
		Analysis:       "Tidak ditemukan kata kunci yang relevan",
		Recommendation: "Teks terlalu pendek atau tidak berhubungan dengan lowongan kerja",
	}
}

func findHits(lower string, terms []string) []string {
	hits := []string{}
	for _, t := range terms {
		if strings.Contains(lower, t) {
			hits = append(hits, t)
		}
	}
	return hits
}
