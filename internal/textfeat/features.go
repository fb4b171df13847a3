package textfeat

import (
	"regexp"
	"strings"
	"unicode"

	"go-jobpost-verifier/pkg/models"
)

// minAnalyzableChars is the floor below which text carries no usable signal
const minAnalyzableChars = 10

var (
	emailRe  = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe  = regexp.MustCompile(`(?:\+62|62|0)8\d{8,11}`)
	numberRe = regexp.MustCompile(`\d+`)
)

// indicator term groups, matched as lowercase substrings
var (
	addressTerms      = []string{"jl.", "jl ", "jalan", "alamat", "street", "gedung", "lantai"}
	companyTerms      = []string{"pt ", "pt.", "cv ", "cv.", "tbk", "persero", "perusahaan", "company", "corp"}
	whatsappTerms     = []string{"whatsapp", "wa ", "wa:", "wa.", "chat"}
	moneyPromiseTerms = []string{"jutaan", "milyar", "penghasilan besar", "gaji besar", "uang mudah", "cepat kaya", "passive income"}
	urgencyTerms      = []string{"segera", "buruan", "terbatas", "deadline", "sekarang juga", "hari ini", "jangan sampai"}
	mlmTerms          = []string{"mlm", "downline", "upline", "member", "join", "jaringan", "sponsor"}
	noExperienceTerms = []string{"tanpa pengalaman", "no experience", "tanpa syarat", "tanpa ijazah"}

	companyElementTerms = []string{"pt ", "pt.", "cv ", "cv.", "perusahaan", "company", "kantor", "office"}
	titleElementTerms   = []string{"posisi", "jabatan", "position", "lowongan", "vacancy", "dibutuhkan", "dicari", "staff", "admin"}
	reqElementTerms     = []string{"syarat", "kualifikasi", "requirement", "pengalaman", "pendidikan", "minimal", "maksimal"}
	contactElementTerms = []string{"hubungi", "contact", "email", "telepon", "telp", "wa", "whatsapp", "@"}
)

// Extractor derives a feature vector from normalized OCR text. It is
// stateless apart from the injected lexicon and safe for concurrent use.
type Extractor struct {
	lexicon *Lexicon
	salary  *SalaryDetector
}

func NewExtractor(lexicon *Lexicon) *Extractor {
	return &Extractor{lexicon: lexicon, salary: NewSalaryDetector()}
}

// Extract builds the full feature vector for one posting's text. Text shorter
// than ten characters yields a zero vector with poor quality and no flags.
func (e *Extractor) Extract(text string) models.FeatureVector {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minAnalyzableChars {
		return models.FeatureVector{
			LanguageQuality:    models.QualityPoor,
			SuspiciousPatterns: []string{},
			QualityIndicators:  []string{},
			Salary:             models.SalaryFlags{Tier: models.RiskNone, Patterns: []string{}},
			KeywordAnalysis:    emptyKeywordAnalysis(),
		}
	}

	lower := strings.ToLower(text)
	words := strings.Fields(trimmed)

	fv := models.FeatureVector{
		Length:             len(trimmed),
		WordCount:          len(words),
		SentenceCount:      countSentences(trimmed),
		AvgWordLength:      avgWordLength(words),
		GenuineKeywords:    countHits(lower, e.lexicon.TrainingGenuine),
		FakeKeywords:       countHits(lower, e.lexicon.TrainingFake),
		HasEmail:           emailRe.MatchString(text),
		HasPhone:           phoneRe.MatchString(text),
		HasAddress:         containsAny(lower, addressTerms),
		HasCompany:         containsAny(lower, companyTerms),
		HasWhatsapp:        containsAny(lower, whatsappTerms),
		HasMoneyPromise:    containsAny(lower, moneyPromiseTerms),
		HasUrgency:         containsAny(lower, urgencyTerms),
		HasMLMTerms:        containsAny(lower, mlmTerms),
		HasNoExperience:    containsAny(lower, noExperienceTerms),
		UppercaseRatio:     uppercaseRatio(trimmed),
		ExclamationCount:   strings.Count(text, "!"),
		QuestionCount:      strings.Count(text, "?"),
		NumberCount:        len(numberRe.FindAllString(text, -1)),
		SuspiciousPatterns: []string{},
		QualityIndicators:  []string{},
	}
	if fv.GenuineKeywords+fv.FakeKeywords > 0 {
		fv.KeywordRatio = float64(fv.GenuineKeywords) / float64(fv.GenuineKeywords+fv.FakeKeywords)
	}

	if fv.FakeKeywords > 3 {
		fv.SuspiciousPatterns = append(fv.SuspiciousPatterns, "High concentration of scam-associated keywords")
	}
	if fv.HasUrgency {
		fv.SuspiciousPatterns = append(fv.SuspiciousPatterns, "Creates artificial urgency")
	}
	if fv.HasMoneyPromise {
		fv.SuspiciousPatterns = append(fv.SuspiciousPatterns, "Promises unrealistic earnings")
	}

	fv.Salary = e.salary.Detect(lower)
	fv.SuspiciousPatterns = append(fv.SuspiciousPatterns, fv.Salary.Patterns...)

	fv.EssentialElements = models.EssentialElements{
		CompanyName:  containsAny(lower, companyElementTerms),
		JobTitle:     containsAny(lower, titleElementTerms),
		Requirements: containsAny(lower, reqElementTerms),
		ContactInfo:  containsAny(lower, contactElementTerms) || fv.HasEmail || fv.HasPhone,
	}
	fv.CompletenessScore = completeness(fv.EssentialElements)
	if !fv.EssentialElements.ContactInfo {
		fv.SuspiciousPatterns = append(fv.SuspiciousPatterns, "Missing contact information")
	}

	fv.ProfessionalWordCount = countHits(lower, e.lexicon.Professional)
	if fv.ProfessionalWordCount >= 3 {
		fv.QualityIndicators = append(fv.QualityIndicators, "Uses professional terminology")
	}
	if fv.CompletenessScore >= 75 {
		fv.QualityIndicators = append(fv.QualityIndicators, "Contains the essential job posting elements")
	}
	if fv.EssentialElements.Requirements {
		fv.QualityIndicators = append(fv.QualityIndicators, "States candidate requirements")
	}

	fv.LanguageQuality = languageQuality(fv.ProfessionalWordCount, len(fv.SuspiciousPatterns))
	fv.KeywordAnalysis = e.AnalyzeKeywords(text)

	return fv
}

// languageQuality tiers professional vocabulary against suspicious signals
func languageQuality(professional, suspicious int) models.LanguageQuality {
	switch {
	case professional >= 5 && suspicious == 0:
		return models.QualityExcellent
	case professional >= 3 && suspicious <= 1:
		return models.QualityGood
	case professional >= 2 && suspicious <= 2:
		return models.QualityFair
	default:
		return models.QualityPoor
	}
}

func completeness(e models.EssentialElements) float64 {
	detected := 0
	for _, present := range []bool{e.CompanyName, e.JobTitle, e.Requirements, e.ContactInfo} {
		if present {
			detected++
		}
	}
	return float64(detected) / 4 * 100
}

func countHits(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func countSentences(text string) int {
	n := 0
	for _, part := range strings.Split(text, ".") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

func avgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}

func uppercaseRatio(text string) float64 {
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
