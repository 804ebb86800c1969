package feed

// Default keyword sets for relevance classification and neighborhood
// extraction. Both are matched as plain substrings against lowercased
// article text; source configurations may override either list.

var DefaultRealEstateKeywords = []string{
	"emlak",
	"gayrimenkul",
	"satılık",
	"kiralık",
	"konut",
	"daire",
	"villa",
	"arsa",
	"yazlık",
	"müstakil",
	"rezidans",
	"apartman",
	"dükkan",
	"işyeri",
	"tapu",
	"imar",
	"inşaat",
	"müteahhit",
	"kentsel dönüşüm",
	"kira",
	"yatırım",
	"metrekare",
	"ipotek",
	"site yönetimi",
	"emlakçı",
}

var DefaultNeighborhoods = []string{
	"karasu",
	"merkez",
	"aziziye",
	"incilli",
	"kabakoz",
	"yalı",
	"liman",
	"küçükkarasu",
	"darıçayırı",
	"denizköy",
	"karapınar",
	"cumhuriyet",
	"fevziye",
	"ihsaniye",
	"yenimahalle",
	"aşağıincilli",
	"kocaali",
	"kaynarca",
	"sakarya",
	"adapazarı",
}

// Fixed terms appended to every relevant article's SEO keyword set.
var defaultSEOTerms = []string{
	"karasu emlak",
	"karasu satılık daire",
	"sakarya gayrimenkul",
}
