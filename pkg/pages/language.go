package pages

// Language is an opaque language tag ("en", "fr", "pt_BR"). It has no
// internal structure beyond its mapping to a page directory name.
type Language string

// DefaultLanguage is the final fallback for every language preference
// list. English pages live in the bare "pages" directory.
const DefaultLanguage Language = "en"

// Dir returns the store directory name for the language. English is
// special-cased: the upstream archive keeps English pages in "pages"
// rather than "pages.en".
func (l Language) Dir() string {
	if l == DefaultLanguage {
		return "pages"
	}
	return "pages." + string(l)
}

// LanguagesFromEnv derives an ordered language preference list in the
// POSIX way: LANG gives the base locale, LANGUAGE a colon-separated
// priority list that takes precedence. Region suffixes and encodings
// are stripped ("pt_BR.UTF-8" yields both "pt_BR" and "pt"). The
// default language is appended as the final fallback.
func LanguagesFromEnv(langVar, languageVar string) []Language {
	var langs []Language
	if langVar == "" {
		return []Language{DefaultLanguage}
	}
	if languageVar != "" {
		for _, entry := range splitNonEmpty(languageVar, ':') {
			langs = appendLocale(langs, entry)
		}
	}
	langs = appendLocale(langs, langVar)
	return normalizeLanguages(langs)
}

// appendLocale adds a locale entry, splitting off encoding and
// appending the bare language code after a regioned one.
func appendLocale(langs []Language, entry string) []Language {
	for i := 0; i < len(entry); i++ {
		if entry[i] == '.' || entry[i] == '@' {
			entry = entry[:i]
			break
		}
	}
	if entry == "" || entry == "C" || entry == "POSIX" {
		return langs
	}
	langs = append(langs, Language(entry))
	for i := 0; i < len(entry); i++ {
		if entry[i] == '_' {
			langs = append(langs, Language(entry[:i]))
			break
		}
	}
	return langs
}

// normalizeLanguages removes duplicates (keeping the first occurrence)
// and guarantees the default language terminates the list.
func normalizeLanguages(langs []Language) []Language {
	out := make([]Language, 0, len(langs)+1)
	for _, l := range langs {
		if !containsLanguage(out, l) {
			out = append(out, l)
		}
	}
	if !containsLanguage(out, DefaultLanguage) {
		out = append(out, DefaultLanguage)
	}
	return out
}

func containsLanguage(langs []Language, l Language) bool {
	for _, x := range langs {
		if x == l {
			return true
		}
	}
	return false
}

func splitNonEmpty(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == sep {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
