package processor

// categoryKeywords 有序的分类关键词表：平局时先声明的分类获胜，
// 因此用 slice 而不是 map 保持声明顺序。
type categoryKeywords struct {
	Category string
	Keywords []string
}

var defaultCategoryTable = []categoryKeywords{
	{"conflict", []string{
		"war", "attack", "bombing", "missile", "military", "airstrike", "killed",
		"troops", "invasion", "offensive", "ceasefire", "casualties", "armed",
		"weapon", "drone strike", "shelling", "terrorist", "insurgent", "siege",
		"combat", "militia", "artillery", "explosion", "battlefield",
	}},
	{"diplomacy", []string{
		"summit", "treaty", "ambassador", "diplomatic", "negotiations", "un",
		"resolution", "bilateral", "multilateral", "peace talks", "envoy",
		"foreign minister", "secretary of state", "accord", "deal", "pact",
	}},
	{"economy", []string{
		"gdp", "inflation", "recession", "stock market", "trade", "tariff",
		"interest rate", "federal reserve", "central bank", "unemployment",
		"economic", "fiscal", "monetary", "budget", "debt", "bond",
		"currency", "imf", "world bank", "sanctions", "export", "import",
	}},
	{"protests", []string{
		"protest", "demonstration", "rally", "uprising", "revolution",
		"opposition", "dissent", "crackdown", "riot", "unrest", "march",
		"strike", "civil disobedience", "activists", "tear gas",
	}},
	{"sanctions", []string{
		"sanctions", "embargo", "blacklist", "freeze assets", "ban",
		"restricted", "penalized", "ofac", "export controls",
	}},
	{"technology", []string{
		"ai", "artificial intelligence", "cyber", "hack", "data breach",
		"technology", "tech", "software", "startup", "crypto", "blockchain",
		"quantum", "semiconductor", "chip", "internet", "5g", "6g",
	}},
	{"climate", []string{
		"climate", "global warming", "carbon", "emissions", "renewable",
		"solar", "wind energy", "drought", "flood", "hurricane", "typhoon",
		"wildfire", "temperature", "ice melt", "sea level", "deforestation",
	}},
	{"health", []string{
		"pandemic", "epidemic", "virus", "vaccine", "outbreak", "who",
		"disease", "infection", "hospital", "health", "medical", "covid",
		"flu", "ebola", "malaria", "pharmaceutical",
	}},
	{"internet", []string{
		"internet shutdown", "censorship", "social media ban", "vpn",
		"digital rights", "surveillance", "privacy", "data protection",
		"online censorship", "firewall", "blocked",
	}},
}

// breakingKeywords 命中任意一个即加 3 分（只加一次）
var breakingKeywords = []string{
	"breaking", "urgent", "just in", "developing", "alert", "flash",
	"emergency", "crisis", "explosion", "shooting", "earthquake",
	"tsunami", "coup", "assassination", "invaded", "nuclear",
	"declaration of war", "state of emergency", "martial law",
}

// highImportanceKeywords 每命中一个加 1 分，上限 4 分
var highImportanceKeywords = []string{
	"president", "prime minister", "united nations", "nato", "eu",
	"g7", "g20", "killed", "dead", "wounded", "displaced",
	"sanctions", "invasion", "ceasefire", "peace deal", "election results",
	"coup attempt", "mass shooting", "terror attack", "pandemic",
}
