package verdict

import (
	"fmt"

	"go-jobpost-verifier/pkg/models"
)

// Recommend maps a verdict and the detected issues to actionable guidance
// cards. The OCR-quality card is always first; a verdict card follows; a
// red-flags card closes the list when suspicious patterns were found.
func Recommend(ensemble models.EnsembleResult, fv models.FeatureVector) []models.Recommendation {
	recs := []models.Recommendation{{
		Category:    "ocr_quality",
		Title:       "Improve screenshot quality",
		Description: "Better source images produce more reliable analysis",
		Suggestions: []string{
			"Upload the highest resolution screenshot available",
			"Crop the image to the job posting text only",
			"Avoid compressed or re-shared copies of the image",
		},
	}}

	switch ensemble.FinalPrediction {
	case models.PredictionFake:
		recs = append(recs, models.Recommendation{
			Category:    "security_alert",
			Title:       "Likely fraudulent posting",
			Description: fmt.Sprintf("The posting scored %.0f%% toward fraud", 100-ensemble.FinalConfidence),
			Suggestions: []string{
				"Do not transfer money or pay any registration fee",
				"Do not share identity documents or bank details",
				"Report the posting to the platform it appeared on",
			},
		})
	case models.PredictionGenuine:
		recs = append(recs, models.Recommendation{
			Category:    "verification",
			Title:       "Posting appears legitimate",
			Description: fmt.Sprintf("The posting scored %.0f%% toward legitimate", ensemble.FinalConfidence),
			Suggestions: []string{
				"Verify the company through its official website or phone line",
				"Confirm the vacancy exists before sharing personal data",
				"Expect a formal interview process, not instant acceptance",
			},
		})
	default:
		recs = append(recs, models.Recommendation{
			Category:    "caution",
			Title:       "Verdict inconclusive",
			Description: "Signals were mixed, treat this posting carefully",
			Suggestions: []string{
				"Research the company independently before responding",
				"Never pay fees for job applications",
				"Ask for an official company email address and verify its domain",
			},
		})
	}

	if len(fv.SuspiciousPatterns) > 0 {
		recs = append(recs, models.Recommendation{
			Category:    "red_flags",
			Title:       fmt.Sprintf("%d red flag(s) detected", len(fv.SuspiciousPatterns)),
			Description: "Specific risk signals found in the posting text",
			Suggestions: fv.SuspiciousPatterns,
		})
	}

	return recs
}
