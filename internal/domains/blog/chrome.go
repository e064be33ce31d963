package blog

// PageChrome holds the localized static labels rendered around a
// language's post list.
type PageChrome struct {
	Header      string `json:"header"`
	LatestNews  string `json:"latestNews"`
	ReadMore    string `json:"readMore"`
	SourceLabel string `json:"sourceLabel"`
	Empty       string `json:"empty"`
}

var chromeByLanguage = map[Language]PageChrome{
	LanguageRU: {
		Header:      "Блог",
		LatestNews:  "Последние новости",
		ReadMore:    "Читать далее",
		SourceLabel: "Источник",
		Empty:       "Записей пока нет",
	},
	LanguageEN: {
		Header:      "Blog",
		LatestNews:  "Latest news",
		ReadMore:    "Read more",
		SourceLabel: "Source",
		Empty:       "No posts yet",
	},
	LanguageES: {
		Header:      "Blog",
		LatestNews:  "Últimas noticias",
		ReadMore:    "Leer más",
		SourceLabel: "Fuente",
		Empty:       "Aún no hay publicaciones",
	},
	LanguageFR: {
		Header:      "Blog",
		LatestNews:  "Dernières nouvelles",
		ReadMore:    "Lire la suite",
		SourceLabel: "Source",
		Empty:       "Pas encore de publications",
	},
}

// ChromeFor returns the static page labels for a language, falling
// back to English for any language without its own set.
func ChromeFor(lang Language) PageChrome {
	if chrome, ok := chromeByLanguage[lang]; ok {
		return chrome
	}
	return chromeByLanguage[LanguageEN]
}
