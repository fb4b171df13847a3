package textfeat

// Lexicon carries the curated word lists the pipeline matches against. The
// lists are supplied data, not logic: matching is case-insensitive substring
// membership everywhere, so multi-word entries behave as phrases. Curation
// happens outside this repository; this default set mirrors the trained
// models' vocabulary.
type Lexicon struct {
	// Training-aligned lists backing the structural feature counts
	TrainingGenuine []string
	TrainingFake    []string

	// Dual-language lists backing the lexical analyzer
	DualGenuine []string
	DualFake    []string

	// Indonesian keyword-analysis lists
	Legitimate []string
	Suspicious []string
	Neutral    []string

	// Professional vocabulary backing the language-quality tiers
	Professional []string
}

// DefaultLexicon returns the built-in Indonesian + English job-posting lexicon
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		TrainingGenuine: []string{
			"pengalaman", "kualifikasi", "syarat", "tanggung jawab", "tunjangan",
			"gaji", "wawancara", "lamaran", "kandidat", "posisi", "lowongan",
			"perusahaan", "karir", "profesional", "skill", "kemampuan",
			"pendidikan", "lulusan", "diploma", "sarjana", "sertifikat",
			"training", "pelatihan", "development", "benefit", "asuransi",
		},
		TrainingFake: []string{
			"mudah", "cepat", "instant", "langsung", "tanpa modal", "gratis",
			"buruan", "terbatas", "deadline", "segera", "jangan sampai", "terlewat",
			"kesempatan emas", "limited time", "sekarang juga", "hari ini",
			"kerja rumah", "work from home", "online", "part time", "freelance",
			"sampingan", "tambahan", "passive income", "join", "member",
			"downline", "upline", "bonus", "komisi", "reward", "cashback",
			"jutaan", "milyar", "unlimited", "tak terbatas", "penghasilan besar",
			"kaya", "sukses", "investasi", "trading", "forex", "crypto", "bitcoin",
			"whatsapp", "wa", "telegram", "dm", "chat", "hubungi", "kontak",
			"no interview", "tanpa wawancara", "langsung kerja", "tanpa pengalaman",
		},
		DualGenuine: []string{
			"experience", "qualification", "requirement", "responsibility", "benefit",
			"salary", "interview", "application", "candidate", "position", "company",
			"corporation", "professional", "career", "employment", "vacancy",
			"skills", "education", "degree", "diploma", "certificate", "training",
			"development", "growth", "promotion", "advancement", "opportunity",
			"competitive", "package", "insurance", "health", "medical", "dental",
			"retirement", "pension", "incentive", "allowance", "transportation",
			"accommodation", "office", "workplace", "environment", "team",
			"colleague", "supervisor", "manager", "director", "executive", "staff",
			"employee", "fulltime", "contract", "permanent", "internship",
			"trainee", "graduate", "senior", "junior", "assistant", "coordinator",
			"specialist", "analyst", "consultant", "engineer", "developer",
			"designer", "programmer", "technician", "administrator", "secretary",
			"receptionist", "cashier", "marketing", "finance", "accounting",
			"operations", "production", "quality", "research", "customer",
			"service", "maintenance", "compliance", "audit", "procurement",
			"logistics", "management", "planning", "strategy", "analysis",
			"communication", "presentation", "leadership", "teamwork",
			"reliability", "punctuality", "flexibility", "creativity",
			"initiative", "dedication", "commitment", "integrity",
			"pengalaman", "kualifikasi", "syarat", "tanggung", "jawab", "tunjangan",
			"gaji", "wawancara", "lamaran", "kandidat", "posisi", "lowongan",
			"pekerjaan", "perusahaan", "pt", "cv", "kontak", "telepon",
			"profesional", "karir", "karier", "jabatan", "keahlian",
			"kemampuan", "keterampilan", "pendidikan", "gelar", "ijazah",
			"sertifikat", "pelatihan", "pengembangan", "promosi", "kenaikan",
			"kesempatan", "kompetitif", "asuransi", "kesehatan", "medis",
			"pensiun", "insentif", "transportasi", "akomodasi", "seragam",
			"kantor", "lingkungan", "tim", "rekan", "atasan", "manajer",
			"direktur", "eksekutif", "staf", "karyawan", "pekerja", "kontrak",
			"tetap", "magang", "lulusan", "asisten", "koordinator", "spesialis",
			"analis", "konsultan", "insinyur", "pengembang", "desainer",
			"teknisi", "operator", "sekretaris", "resepsionis", "kasir",
			"penjualan", "pemasaran", "keuangan", "akuntansi", "hukum",
			"operasional", "produksi", "kualitas", "penelitian", "pelanggan",
			"layanan", "dukungan", "pemeliharaan", "keamanan", "keselamatan",
			"kepatuhan", "logistik", "manajemen", "perencanaan", "strategi",
			"analisis", "pelaporan", "komunikasi", "presentasi", "kepemimpinan",
			"kolaborasi", "organisasi", "akurasi", "keandalan", "fleksibilitas",
			"kreativitas", "inovasi", "inisiatif", "motivasi", "dedikasi",
			"komitmen", "integritas", "kejujuran",
		},
		DualFake: []string{
			"easy money", "quick cash", "fast cash", "instant", "guaranteed income",
			"work from home", "home based", "no experience", "no skills",
			"no qualifications", "no interview", "no resume", "immediate start",
			"urgent hiring", "asap", "hurry", "get rich", "passive income",
			"residual income", "unlimited earning", "financial freedom",
			"retire early", "quit your job", "be your own boss", "flexible hours",
			"side hustle", "extra income", "business opportunity", "join now",
			"sign up", "limited spots", "exclusive", "secret method", "insider",
			"proven system", "foolproof", "autopilot", "automated", "effortless",
			"anyone can do", "beginners welcome", "copy paste", "data entry",
			"typing job", "survey", "click ads", "mystery shopper",
			"product tester", "mlm", "pyramid", "ponzi", "binary options",
			"crypto", "bitcoin", "forex", "trading", "casino", "gambling",
			"lottery", "sweepstakes", "prize winner", "congratulations",
			"selected", "act now", "dont miss", "last chance", "final call",
			"uang mudah", "uang cepat", "cepat kaya", "kaya mendadak",
			"tanpa modal", "tanpa pengalaman", "tanpa wawancara", "tanpa syarat",
			"kerja rumahan", "kerja dari rumah", "kerja online", "bisnis online",
			"mulai hari ini", "sekarang juga", "butuh segera", "buruan",
			"dijamin untung", "dijamin", "pasti untung", "profit", "resiko nol",
			"bebas resiko", "modal kecil", "penghasilan pasif", "jutaan rupiah",
			"milyaran", "kebebasan finansial", "pensiun dini", "jadi bos",
			"sesuka hati", "jam fleksibel", "kerja sampingan", "income tambahan",
			"peluang emas", "kesempatan langka", "terbatas", "eksklusif",
			"rahasia", "metode rahasia", "sistem terbukti", "cara ampuh",
			"trik jitu", "otomatis", "gampang banget", "siapa saja bisa",
			"pemula welcome", "kerja santai", "ketik", "klik iklan",
			"isi amplop", "judi", "lotere", "undian", "hadiah", "pemenang",
			"selamat terpilih", "jangan sampai terlewat", "kesempatan terakhir",
			"investasi", "saham", "reksadana", "deposito", "kredit", "pinjaman",
			"hutang", "cicilan", "bunga", "komisi", "reward", "cashback",
			"diskon", "promo",
		},
		Legitimate: []string{
			"perusahaan", "company", "pt", "cv", "tbk", "persero", "kantor",
			"alamat", "lokasi", "cabang", "divisi", "departemen", "posisi",
			"jabatan", "lowongan", "vacancy", "karir", "career", "staff",
			"karyawan", "pegawai", "manager", "supervisor", "koordinator",
			"kualifikasi", "persyaratan", "requirement", "pendidikan",
			"pengalaman", "keahlian", "skill", "kompetensi", "sertifikat",
			"ijazah", "diploma", "sarjana", "sma", "smk", "lulusan", "jurusan",
			"fakultas", "universitas", "gaji", "salary", "tunjangan",
			"allowance", "benefit", "asuransi", "kesehatan", "bpjs", "cuti",
			"lembur", "wawancara", "interview", "lamaran", "melamar",
		},
		Suspicious: []string{
			"mudah", "cepat", "instant", "langsung", "jutaan", "milyar",
			"kaya", "sukses", "freedom", "unlimited", "fantastis", "dahsyat",
			"ajaib", "dijamin", "pasti", "terbukti", "mlm", "downline",
			"upline", "sponsor", "referral", "komisi", "passive income",
			"piramida", "jaringan", "forex", "crypto", "bitcoin", "trading",
			"biaya", "transfer", "deposit", "jaminan", "administrasi",
			"pendaftaran", "registrasi", "materai", "pulsa", "saldo",
			"bro", "sis", "guys", "mantap", "keren", "wow", "gila",
			"segera", "buruan", "terbatas", "promo", "gratis", "bonus",
			"hadiah", "doorprize", "beruntung", "kesempatan emas", "rahasia",
			"urgent", "deadline", "dm", "inbox", "japri", "telegram",
			"whatsapp", "wa", "medsos", "autopilot", "otomatis", "trik",
			"jalan pintas", "shortcut", "jangan sampai", "terlewat", "menyesal",
		},
		Neutral: []string{
			"kerja", "work", "job", "opportunity", "kesempatan", "peluang",
			"penghasilan", "income", "uang", "money", "rupiah", "waktu",
			"hari", "minggu", "bulan", "tahun", "jam", "tempat", "lokasi",
			"daerah", "kota", "jakarta", "surabaya", "bandung", "medan",
			"semarang", "yogyakarta", "bali", "makassar",
		},
		Professional: []string{
			"experience", "qualification", "responsibility", "requirement",
			"benefit", "salary", "position", "candidate", "application",
			"interview",
		},
	}
}
