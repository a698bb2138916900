package heuristics

// Tables is the versioned lookup data behind every heuristic. Treat a value as
// immutable once handed to New; swap whole tables (e.g. per locale) instead of
// mutating them.
type Tables struct {
	Version string

	// Skills is the reference vocabulary. Aliases resolve to Name.
	Skills []SkillTerm
	// SkillCategories is ordered by priority; a skill lands in the first category whose keyword it contains.
	SkillCategories []SkillCategory
	// SkillSynonyms expands a lowercase skill for query building only.
	SkillSynonyms map[string][]string

	Benefits []Label

	// LocationAliases normalizes lowercase spellings to a display name.
	LocationAliases map[string]string
	// LocationSynonyms expands a lowercase metro or country into OR-able names.
	LocationSynonyms map[string][]string
	USStates         map[string]string // code → name
	Countries        []string

	RemoteTerms []string
	HybridTerms []string
	OnsiteTerms []string

	SeniorTerms []string
	EntryTerms  []string

	// JobTypes is ordered; the first label whose keyword appears wins.
	JobTypes        []Label
	JobTypeNoise    []string // phrases removed before job type classification
	CompanySizes    []Label
	Cultures        []Label
	Currencies      map[string]string // symbol or code → ISO code
	DefaultCurrency string

	WellKnownCompanies []string // lowercase company names or domains
	JobBoards          []string // lowercase domains
	ATSHosts           []string // hosts whose first path segment is the company slug
	CareerSubdomains   []string
	TLDSuffixes        []string // longest first
	// RoleWords disqualify a title segment from being read as a location.
	RoleWords []string

	// Candidate profile inference.
	Industries       []KeywordGroup
	CompanyTypes     []KeywordGroup
	ProjectTypes     []KeywordGroup
	CommercialTerms  []string
	OpenSourceHosts  []string
	RoleTitles       []KeywordGroup // matched against job titles
	FrameworkRoles   []KeywordGroup // fallback when no title matches
	HighDemandSkills []string
	RareSkills       []string
	SkillPairs       [][2]string
	RelocationTerms  []string
	VisaTerms        []string
}

// KeywordGroup tags text with Label when any keyword occurs.
type KeywordGroup struct {
	Label    string
	Keywords []string
}

// SkillTerm is one vocabulary entry.
type SkillTerm struct {
	Name    string
	Aliases []string
	// CaseSensitive terms must appear with the exact casing of Name or an alias.
	CaseSensitive bool
}

// SkillCategory is one bucket of the skill partition.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// Label maps a lowercase keyword to an output label.
type Label struct {
	Keyword string
	Label   string
}

// Skill category names, in priority order.
const (
	CategoryLanguage  = "languages"
	CategoryFramework = "frameworks"
	CategoryDatabase  = "databases"
	CategoryCloud     = "cloud"
	CategoryTool      = "tools"
	CategorySoft      = "soft"
	CategoryTechnical = "technical"
)

// Experience level labels produced by ClassifyExperienceLevel.
const (
	LevelEntry  = "Entry-level"
	LevelMid    = "Mid-level"
	LevelSenior = "Senior"
)

// Job type labels produced by ClassifyJobType.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// Location labels produced by keyword detection.
const (
	LocationRemote = "Remote"
	LocationHybrid = "Hybrid"
	LocationOnsite = "On-site"
)

// DefaultTables returns the built-in English tables.
func DefaultTables() *Tables {
	return &Tables{
		Version: "2026.10-en",

		Skills: []SkillTerm{
			{Name: "JavaScript", Aliases: []string{"ecmascript"}},
			{Name: "TypeScript"},
			{Name: "Python"},
			{Name: "Java"},
			{Name: "Go", Aliases: []string{"Golang", "golang"}, CaseSensitive: true},
			{Name: "Rust"},
			{Name: "C++", Aliases: []string{"cpp"}},
			{Name: "C#", Aliases: []string{"csharp"}},
			{Name: "Ruby"},
			{Name: "PHP"},
			{Name: "Swift"},
			{Name: "Kotlin"},
			{Name: "Scala"},
			{Name: "Elixir"},
			{Name: "Solidity"},
			{Name: "SQL"},
			{Name: "HTML"},
			{Name: "CSS"},
			{Name: "React", Aliases: []string{"react.js", "reactjs"}},
			{Name: "React Native"},
			{Name: "Next.js", Aliases: []string{"nextjs"}},
			{Name: "Vue", Aliases: []string{"vue.js", "vuejs"}},
			{Name: "Angular", Aliases: []string{"angularjs"}},
			{Name: "Svelte"},
			{Name: "Node.js", Aliases: []string{"nodejs", "node"}},
			{Name: "Express", Aliases: []string{"Express.js", "express.js", "expressjs"}, CaseSensitive: true},
			{Name: "NestJS"},
			{Name: "Django"},
			{Name: "Flask"},
			{Name: "FastAPI"},
			{Name: "Spring", Aliases: []string{"Spring Boot", "spring boot"}, CaseSensitive: true},
			{Name: "Rails", Aliases: []string{"ruby on rails"}},
			{Name: "Laravel"},
			{Name: ".NET", Aliases: []string{"dotnet", "asp.net"}},
			{Name: "GraphQL"},
			{Name: "REST", Aliases: []string{"RESTful", "REST API", "REST APIs"}, CaseSensitive: true},
			{Name: "gRPC"},
			{Name: "Tailwind", Aliases: []string{"tailwindcss"}},
			{Name: "Flutter"},
			{Name: "TensorFlow"},
			{Name: "PyTorch"},
			{Name: "scikit-learn", Aliases: []string{"sklearn"}},
			{Name: "Pandas"},
			{Name: "Machine Learning", Aliases: []string{"ml engineering"}},
			{Name: "Deep Learning"},
			{Name: "NLP", Aliases: []string{"natural language processing"}},
			{Name: "LLM", Aliases: []string{"llms", "large language models"}},
			{Name: "Computer Vision"},
			{Name: "Data Science"},
			{Name: "PostgreSQL", Aliases: []string{"postgres"}},
			{Name: "MySQL"},
			{Name: "MongoDB", Aliases: []string{"mongo"}},
			{Name: "Redis"},
			{Name: "Elasticsearch"},
			{Name: "DynamoDB"},
			{Name: "Cassandra"},
			{Name: "SQLite"},
			{Name: "Kafka"},
			{Name: "RabbitMQ"},
			{Name: "Snowflake"},
			{Name: "BigQuery"},
			{Name: "Spark", Aliases: []string{"apache spark", "pyspark"}},
			{Name: "Airflow"},
			{Name: "AWS", Aliases: []string{"amazon web services"}},
			{Name: "GCP", Aliases: []string{"google cloud"}},
			{Name: "Azure"},
			{Name: "Docker"},
			{Name: "Kubernetes", Aliases: []string{"k8s"}},
			{Name: "Terraform"},
			{Name: "Ansible"},
			{Name: "Jenkins"},
			{Name: "GitHub Actions"},
			{Name: "CI/CD"},
			{Name: "Linux"},
			{Name: "Git"},
			{Name: "Figma"},
			{Name: "Jira"},
			{Name: "Webpack"},
			{Name: "Prometheus"},
			{Name: "Grafana"},
			{Name: "Microservices", Aliases: []string{"microservice"}},
			{Name: "WebAssembly", Aliases: []string{"wasm"}},
			{Name: "Blockchain"},
			{Name: "Web3"},
			{Name: "Unity"},
		},

		SkillCategories: []SkillCategory{
			{Name: CategoryLanguage, Keywords: []string{
				"javascript", "typescript", "python", "java", "go", "golang", "rust", "c++", "c#", "ruby",
				"php", "swift", "kotlin", "scala", "elixir", "solidity", "html", "css", "dart", "r", "perl",
				"haskell", "clojure", "objective-c", "bash", "shell", "lua", "julia",
			}},
			{Name: CategoryFramework, Keywords: []string{
				"react", "next.js", "nextjs", "vue", "angular", "svelte", "node.js", "nodejs", "express",
				"nestjs", "django", "flask", "fastapi", "spring", "rails", "laravel", ".net", "flutter",
				"tensorflow", "pytorch", "scikit-learn", "pandas", "tailwind", "jquery", "redux", "graphql",
				"gin", "echo", "fiber", "svelte", "nuxt", "remix", "electron", "unity",
			}},
			{Name: CategoryDatabase, Keywords: []string{
				"postgresql", "postgres", "mysql", "mongodb", "mongo", "redis", "elasticsearch", "dynamodb",
				"cassandra", "sqlite", "sql", "oracle", "mariadb", "firebase", "supabase", "snowflake",
				"bigquery", "neo4j", "clickhouse",
			}},
			{Name: CategoryCloud, Keywords: []string{
				"aws", "gcp", "google cloud", "azure", "docker", "kubernetes", "k8s", "terraform",
				"ansible", "jenkins", "github actions", "ci/cd", "heroku", "vercel", "netlify",
				"cloudflare", "serverless", "lambda", "helm", "devops",
			}},
			{Name: CategoryTool, Keywords: []string{
				"git", "github", "gitlab", "jira", "figma", "webpack", "vite", "linux", "postman",
				"prometheus", "grafana", "kafka", "rabbitmq", "airflow", "spark", "vscode", "notion",
				"confluence", "slack", "photoshop",
			}},
			{Name: CategorySoft, Keywords: []string{
				"leadership", "communication", "teamwork", "collaboration", "mentoring", "problem solving",
				"problem-solving", "management", "agile", "scrum", "public speaking", "negotiation",
				"time management", "critical thinking", "adaptability", "creativity",
			}},
		},

		SkillSynonyms: map[string][]string{
			"react":            {"React.js", "Frontend", "UI/UX"},
			"vue":              {"Vue.js", "Frontend"},
			"angular":          {"AngularJS", "Frontend"},
			"node.js":          {"Node", "NodeJS", "Backend"},
			"javascript":       {"JS", "ECMAScript"},
			"typescript":       {"TS", "JavaScript"},
			"python":           {"Django", "Flask", "FastAPI"},
			"go":               {"Golang", "Backend"},
			"java":             {"Spring", "JVM"},
			"kubernetes":       {"K8s", "Container Orchestration"},
			"docker":           {"Containers", "Containerization"},
			"aws":              {"Amazon Web Services", "Cloud"},
			"gcp":              {"Google Cloud", "Cloud"},
			"azure":            {"Microsoft Azure", "Cloud"},
			"machine learning": {"ML", "AI", "Data Science"},
			"postgresql":       {"Postgres", "SQL"},
			"graphql":          {"Apollo", "API"},
			"solidity":         {"Smart Contracts", "Web3", "Ethereum"},
			"flutter":          {"Dart", "Mobile"},
			"swift":            {"iOS", "Mobile"},
			"kotlin":           {"Android", "Mobile"},
		},

		Benefits: []Label{
			{"health insurance", "Health insurance"},
			{"medical", "Health insurance"},
			{"dental", "Health insurance"},
			{"401k", "401(k)/Retirement"},
			{"401(k)", "401(k)/Retirement"},
			{"retirement", "401(k)/Retirement"},
			{"pension", "401(k)/Retirement"},
			{"equity", "Equity"},
			{"stock options", "Equity"},
			{"rsu", "Equity"},
			{"rsus", "Equity"},
			{"remote work", "Remote work"},
			{"work from home", "Remote work"},
			{"remote-friendly", "Remote work"},
			{"flexible hours", "Flexible hours"},
			{"flexible schedule", "Flexible hours"},
			{"flexible working hours", "Flexible hours"},
			{"unlimited pto", "Unlimited PTO"},
			{"unlimited vacation", "Unlimited PTO"},
			{"unlimited paid time off", "Unlimited PTO"},
		},

		LocationAliases: map[string]string{
			"sf":                "San Francisco",
			"san fran":          "San Francisco",
			"nyc":               "New York",
			"new york city":     "New York",
			"ny":                "New York",
			"la":                "Los Angeles",
			"dc":                "Washington, DC",
			"bay area":          "Bay Area",
			"sf bay area":       "Bay Area",
			"silicon valley":    "Silicon Valley",
			"remote work":       "Remote",
			"remote":            "Remote",
			"fully remote":      "Remote",
			"work from home":    "Remote",
			"wfh":               "Remote",
			"anywhere":          "Remote",
			"worldwide":         "Remote",
			"hybrid":            "Hybrid",
			"on-site":           "On-site",
			"onsite":            "On-site",
			"uk":                "United Kingdom",
			"us":                "United States",
			"usa":               "United States",
			"u.s.":              "United States",
			"berlin":            "Berlin",
			"london":            "London",
			"san francisco":     "San Francisco",
			"new york":          "New York",
			"los angeles":       "Los Angeles",
			"seattle":           "Seattle",
			"austin":            "Austin",
			"boston":            "Boston",
			"chicago":           "Chicago",
			"toronto":           "Toronto",
			"amsterdam":         "Amsterdam",
			"paris":             "Paris",
			"munich":            "Munich",
			"dublin":            "Dublin",
			"singapore":         "Singapore",
			"bangalore":         "Bangalore",
			"bengaluru":         "Bangalore",
			"tel aviv":          "Tel Aviv",
			"denver":            "Denver",
			"miami":             "Miami",
		},

		LocationSynonyms: map[string][]string{
			"bay area":       {"San Francisco", "SF", "Silicon Valley", "Palo Alto", "Mountain View"},
			"silicon valley": {"San Francisco", "Palo Alto", "Mountain View", "San Jose", "Bay Area"},
			"san francisco":  {"SF", "Bay Area", "Silicon Valley"},
			"new york":       {"NYC", "New York City", "Manhattan", "Brooklyn"},
			"los angeles":    {"LA", "Santa Monica", "Pasadena"},
			"seattle":        {"Bellevue", "Redmond", "Kirkland"},
			"boston":         {"Cambridge", "Somerville"},
			"austin":         {"Texas", "TX"},
			"washington, dc": {"DC", "Arlington", "Virginia"},
			"london":         {"Greater London", "United Kingdom", "UK"},
			"berlin":         {"Germany", "DE"},
			"united states":  {"US", "USA", "United States"},
			"united kingdom": {"UK", "England", "London"},
			"germany":        {"Berlin", "Munich", "Hamburg"},
			"canada":         {"Toronto", "Vancouver", "Montreal"},
			"netherlands":    {"Amsterdam", "Rotterdam", "Utrecht"},
			"india":          {"Bangalore", "Hyderabad", "Pune"},
			"europe":         {"EU", "EMEA", "Germany", "Netherlands", "United Kingdom"},
		},

		USStates: map[string]string{
			"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
			"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
			"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
			"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
			"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
			"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
			"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
			"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
			"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
			"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
			"DC": "District of Columbia",
		},

		Countries: []string{
			"United States", "USA", "US", "Canada", "Mexico", "Brazil", "Argentina", "United Kingdom", "UK",
			"Ireland", "Germany", "France", "Spain", "Portugal", "Italy", "Netherlands", "Belgium",
			"Switzerland", "Austria", "Sweden", "Norway", "Denmark", "Finland", "Poland", "Czechia",
			"Czech Republic", "Estonia", "Lithuania", "Latvia", "Romania", "Ukraine", "Serbia", "Greece",
			"Turkey", "Israel", "United Arab Emirates", "UAE", "India", "Pakistan", "Singapore", "Japan",
			"South Korea", "China", "Hong Kong", "Taiwan", "Vietnam", "Philippines", "Indonesia",
			"Malaysia", "Thailand", "Australia", "New Zealand", "South Africa", "Nigeria", "Kenya", "Egypt",
			"Europe",
		},

		RemoteTerms: []string{
			"remote", "remotely", "work from home", "wfh", "fully distributed", "distributed team",
			"anywhere in the world", "work from anywhere", "100% remote", "remote-first",
		},
		HybridTerms: []string{
			"hybrid", "days in office", "days in the office", "days a week in", "partially remote",
			"split between home and office",
		},
		OnsiteTerms: []string{
			"on-site", "onsite", "on site", "in-office", "in office", "in-person", "in person",
		},

		SeniorTerms: []string{"senior", "sr", "lead", "principal", "staff"},
		EntryTerms: []string{
			"junior", "jr", "entry-level", "entry level", "new grad", "new-grad", "new graduate",
			"graduate", "intern", "internship",
		},

		JobTypes: []Label{
			{"internship", JobTypeInternship},
			{"intern", JobTypeInternship},
			{"part-time", JobTypePartTime},
			{"part time", JobTypePartTime},
			{"contract", JobTypeContract},
			{"contractor", JobTypeContract},
			{"freelance", JobTypeContract},
			{"temporary", JobTypeContract},
			{"full-time", JobTypeFullTime},
			{"full time", JobTypeFullTime},
			{"permanent", JobTypeFullTime},
		},
		JobTypeNoise: []string{"smart contracts", "smart contract", "contract testing"},

		CompanySizes: []Label{
			{"startup", "startup"},
			{"start-up", "startup"},
			{"seed stage", "startup"},
			{"seed-stage", "startup"},
			{"series a", "startup"},
			{"series b", "startup"},
			{"early-stage", "startup"},
			{"early stage", "startup"},
			{"founding engineer", "startup"},
			{"scale-up", "mid-size"},
			{"scaleup", "mid-size"},
			{"mid-size", "mid-size"},
			{"midsize", "mid-size"},
			{"series c", "mid-size"},
			{"series d", "mid-size"},
			{"growing company", "mid-size"},
			{"fortune 500", "enterprise"},
			{"fortune 100", "enterprise"},
			{"multinational", "enterprise"},
			{"publicly traded", "enterprise"},
			{"10,000+ employees", "enterprise"},
			{"global leader", "enterprise"},
			{"enterprise", "enterprise"},
		},

		Cultures: []Label{
			{"remote-first", "remote-first"},
			{"fast-paced", "fast-paced"},
			{"fast paced", "fast-paced"},
			{"mission-driven", "mission-driven"},
			{"work-life balance", "work-life balance"},
			{"work life balance", "work-life balance"},
			{"collaborative", "collaborative"},
			{"innovative", "innovative"},
			{"innovation", "innovative"},
			{"inclusive", "inclusive"},
			{"diverse", "inclusive"},
			{"diversity", "inclusive"},
		},

		Currencies: map[string]string{
			"$": "USD", "€": "EUR", "£": "GBP",
			"usd": "USD", "eur": "EUR", "gbp": "GBP", "cad": "CAD", "aud": "AUD", "chf": "CHF", "inr": "INR",
		},
		DefaultCurrency: "USD",

		WellKnownCompanies: []string{
			"google", "alphabet", "microsoft", "apple", "amazon", "meta", "facebook", "netflix", "stripe",
			"airbnb", "uber", "shopify", "spotify", "salesforce", "nvidia", "openai", "anthropic", "adobe",
			"atlassian", "github", "gitlab", "datadog", "cloudflare", "databricks", "snowflake", "twilio",
			"dropbox", "linkedin", "coinbase", "figma", "notion", "vercel", "hashicorp", "mongodb",
		},
		JobBoards: []string{
			"linkedin.com", "indeed.com", "glassdoor.com", "greenhouse.io", "lever.co", "ashbyhq.com",
			"workable.com", "wellfound.com", "angel.co", "workatastartup.com", "ycombinator.com",
			"weworkremotely.com", "remoteok.com", "remotive.com", "remote.co", "dice.com", "builtin.com",
			"otta.com", "welcometothejungle.com", "stackoverflow.com", "hired.com", "ziprecruiter.com",
			"monster.com", "smartrecruiters.com", "myworkdayjobs.com",
		},
		ATSHosts: []string{
			"boards.greenhouse.io", "job-boards.greenhouse.io", "jobs.lever.co", "jobs.ashbyhq.com",
			"apply.workable.com", "jobs.smartrecruiters.com",
		},
		CareerSubdomains: []string{"careers", "jobs", "career", "apply", "work", "join", "hire", "talent"},
		TLDSuffixes: []string{
			".co.uk", ".com.au", ".co.in", ".com.br", ".com", ".io", ".co", ".ai", ".org", ".net",
			".dev", ".tech", ".app", ".jobs", ".de", ".fr", ".nl", ".uk", ".us", ".eu",
		},
		RoleWords: []string{
			"engineer", "developer", "manager", "designer", "analyst", "scientist", "architect",
			"lead", "senior", "junior", "intern", "team", "platform", "backend", "frontend", "full",
			"stack", "remote", "hybrid", "contract", "position", "role", "job", "jobs", "careers",
			"specialist", "consultant", "director", "head", "officer", "administrator", "sre", "devops",
		},

		Industries: []KeywordGroup{
			{"fintech", []string{"fintech", "bank", "banking", "payments", "finance", "financial", "trading", "insurance", "lending"}},
			{"healthcare", []string{"healthcare", "health", "medical", "clinic", "patient", "patients", "pharma", "biotech", "hospital"}},
			{"e-commerce", []string{"e-commerce", "ecommerce", "retail", "marketplace", "shop", "storefront", "checkout"}},
			{"edtech", []string{"edtech", "education", "learning platform", "school", "university", "students", "courses"}},
			{"saas", []string{"saas", "b2b", "subscription", "crm", "erp"}},
			{"gaming", []string{"gaming", "game", "games", "esports"}},
			{"media", []string{"media", "news", "publishing", "streaming", "content platform", "video"}},
			{"ai", []string{"artificial intelligence", "machine learning", "ai", "llm", "generative"}},
			{"security", []string{"security", "cybersecurity", "infosec", "identity"}},
			{"blockchain", []string{"blockchain", "web3", "crypto", "defi", "nft", "smart contract", "smart contracts"}},
			{"travel", []string{"travel", "booking", "hospitality", "airline", "airlines"}},
			{"logistics", []string{"logistics", "supply chain", "delivery", "shipping", "fleet"}},
			{"government", []string{"government", "public sector", "govtech", "civic"}},
			{"consulting", []string{"consulting", "consultancy", "agency", "outsourcing"}},
		},
		CompanyTypes: []KeywordGroup{
			{"startup", []string{"startup", "start-up", "seed", "series a", "series b", "founding", "co-founder", "cofounder", "early-stage", "yc"}},
			{"mid-size", []string{"scale-up", "scaleup", "mid-size", "midsize", "series c", "series d", "growth stage"}},
			{"enterprise", []string{"enterprise", "fortune 500", "corporation", "multinational", "global", "google", "microsoft", "amazon", "meta", "apple", "ibm", "oracle", "sap", "accenture", "deloitte"}},
		},
		ProjectTypes: []KeywordGroup{
			{"web", []string{"web", "website", "webapp", "web app", "web application", "landing page", "dashboard"}},
			{"mobile", []string{"mobile", "ios", "android", "react native", "flutter", "app store"}},
			{"api", []string{"api", "backend", "microservice", "microservices", "rest", "graphql", "grpc"}},
			{"data", []string{"data pipeline", "etl", "analytics", "data warehouse", "visualization", "scraper"}},
			{"ml", []string{"machine learning", "ml", "model", "neural", "nlp", "computer vision", "llm", "ai"}},
			{"devops", []string{"infrastructure", "ci/cd", "kubernetes", "terraform", "deployment", "monitoring"}},
			{"library", []string{"library", "package", "sdk", "plugin", "cli", "framework", "extension"}},
			{"game", []string{"game", "unity", "unreal"}},
			{"blockchain", []string{"smart contract", "smart contracts", "blockchain", "web3", "dapp", "defi"}},
		},
		CommercialTerms: []string{
			"client", "clients", "customer", "customers", "production", "revenue", "paying users",
			"commercial", "freelance", "contract work", "saas", "startup", "launched",
		},
		OpenSourceHosts: []string{"github.com", "gitlab.com", "bitbucket.org"},
		RoleTitles: []KeywordGroup{
			{"Full Stack Developer", []string{"full stack", "full-stack", "fullstack"}},
			{"Frontend Developer", []string{"frontend", "front-end", "front end", "ui engineer", "ui developer"}},
			{"Backend Developer", []string{"backend", "back-end", "back end", "api engineer", "server-side"}},
			{"Mobile Developer", []string{"mobile", "ios", "android"}},
			{"DevOps Engineer", []string{"devops", "sre", "site reliability", "infrastructure", "platform engineer"}},
			{"Data Scientist", []string{"data scientist", "data science"}},
			{"Data Engineer", []string{"data engineer", "data engineering"}},
			{"Machine Learning Engineer", []string{"machine learning", "ml engineer", "ai engineer"}},
			{"Engineering Manager", []string{"engineering manager", "head of engineering", "vp engineering", "cto"}},
			{"Product Designer", []string{"designer", "ux", "ui/ux"}},
			{"Software Engineer", []string{"software engineer", "software developer", "programmer"}},
		},
		FrameworkRoles: []KeywordGroup{
			{"Frontend Developer", []string{"React", "Vue", "Angular", "Svelte", "Next.js"}},
			{"Backend Developer", []string{"Express", "Django", "Spring", "Node.js", "FastAPI", "Rails", "Laravel", "NestJS"}},
			{"Mobile Developer", []string{"Flutter", "React Native", "Swift", "Kotlin"}},
			{"Machine Learning Engineer", []string{"TensorFlow", "PyTorch", "scikit-learn"}},
		},
		HighDemandSkills: []string{
			"Python", "Go", "Rust", "TypeScript", "React", "Node.js", "Kubernetes", "AWS", "Docker",
			"Terraform", "PostgreSQL", "GraphQL", "Machine Learning", "LLM", "Next.js", "Kafka",
		},
		RareSkills: []string{
			"Rust", "Elixir", "Haskell", "Scala", "Clojure", "Erlang", "OCaml", "Zig", "Solidity",
			"WebAssembly", "Julia", "F#",
		},
		SkillPairs: [][2]string{
			{"Go", "Kubernetes"},
			{"Rust", "WebAssembly"},
			{"React", "Machine Learning"},
			{"Python", "Kubernetes"},
			{"Solidity", "React"},
			{"TypeScript", "Rust"},
			{"Swift", "Machine Learning"},
			{"Terraform", "Go"},
			{"PostgreSQL", "Machine Learning"},
			{"Flutter", "Firebase"},
			{"Kafka", "Go"},
			{"LLM", "TypeScript"},
		},
		RelocationTerms: []string{"willing to relocate", "open to relocation", "open to relocate", "happy to relocate"},
		VisaTerms:       []string{"visa sponsorship", "require sponsorship", "need sponsorship", "needs sponsorship", "work permit", "h-1b", "h1b"},
	}
}
