package ocr

// Ruleset is the data-only OCR repair table applied by the Normalizer before
// character-level cleanup. Replacements map frequently mangled renderings of
// Indonesian job-posting vocabulary to their canonical form; Vocabulary backs
// the edit-distance repair of tokens the table does not list. Swap the whole
// table to retarget the normalizer at another domain.
type Ruleset struct {
	Version      string
	Replacements map[string]string
	Vocabulary   []string
}

// DefaultRuleset returns the built-in Indonesian job-posting repair table
func DefaultRuleset() Ruleset {
	return Ruleset{
		Version: "2024.1",
		Replacements: map[string]string{
			"L0W0NGAN":   "LOWONGAN",
			"KERJ4":      "KERJA",
			"G4JI":       "GAJI",
			"PERUS4H44N": "PERUSAHAAN",
			"P0SISI":     "POSISI",
			"J4B4T4N":    "JABATAN",
			"K4RIR":      "KARIR",
			"PENG4L4M4N": "PENGALAMAN",
			"SY4R4T":     "SYARAT",
			"T4NGGUNG":   "TANGGUNG",
			"J4W4B":      "JAWAB",
			"TUNJ4NG4N":  "TUNJANGAN",
			"W4W4NC4R4":  "WAWANCARA",
			"L4M4R4N":    "LAMARAN",
			"S4RJ4N4":    "SARJANA",
			"D1PL0M4":    "DIPLOMA",
		},
		Vocabulary: []string{
			"LOWONGAN", "KERJA", "GAJI", "PERUSAHAAN", "POSISI", "JABATAN",
			"KARIR", "KARIER", "PENGALAMAN", "KUALIFIKASI", "SYARAT",
			"TANGGUNG", "JAWAB", "TUNJANGAN", "WAWANCARA", "LAMARAN",
			"KANDIDAT", "PENDIDIKAN", "SARJANA", "DIPLOMA", "SERTIFIKAT",
			"KEAHLIAN", "KEMAMPUAN", "KETERAMPILAN", "PROFESIONAL",
			"PENDAFTARAN", "PENGHASILAN", "UNIVERSITAS",
		},
	}
}
