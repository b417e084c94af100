package locale

import "strings"

const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// Preference 页面语言偏好
type Preference struct {
	Language string
	HTMLLang string
}

// NormalizeLanguage maps a language tag onto a supported language, or "".
func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// FromAcceptLanguage picks the first supported tag of an Accept-Language
// header. Quality values are ignored; browsers already list tags by preference.
func FromAcceptLanguage(header string) Preference {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if language := NormalizeLanguage(tag); language != "" {
			return PreferenceForLanguage(language)
		}
	}
	return PreferenceForLanguage(LanguageEnglish)
}

// PreferenceForLanguage 默认英文
func PreferenceForLanguage(language string) Preference {
	if NormalizeLanguage(language) == LanguageChinese {
		return Preference{Language: LanguageChinese, HTMLLang: "zh-CN"}
	}
	return Preference{Language: LanguageEnglish, HTMLLang: "en"}
}
