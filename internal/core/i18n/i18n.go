package i18n

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localesFS embed.FS

// Translations holds all translation strings organized by section
type Translations struct {
	Toast  ToastTranslations  `yaml:"toast" json:"toast"`
	Format FormatTranslations `yaml:"format" json:"format"`
	Errors ErrorTranslations  `yaml:"errors" json:"errors"`
	CLI    CLITranslations    `yaml:"cli" json:"cli"`
	Server ServerTranslations `yaml:"server" json:"server"`

	// flat maps "section.key" to its text for Lookup
	flat map[string]string
}

// ToastTranslations holds short transient messages shown after paste/share
type ToastTranslations struct {
	PasteMsg     string `yaml:"paste_msg" json:"paste_msg"`
	PasteFailMsg string `yaml:"paste_fail_msg" json:"paste_fail_msg"`
	ShareFailMsg string `yaml:"share_fail_msg" json:"share_fail_msg"`
}

// FormatTranslations holds display formats for media metadata.
// Values containing verbs are passed to a printf-style printer.
type FormatTranslations struct {
	Unknown    string `yaml:"unknown" json:"unknown"`
	FilesizeGB string `yaml:"filesize_gb" json:"filesize_gb"`
	FilesizeMB string `yaml:"filesize_mb" json:"filesize_mb"`
}

type ErrorTranslations struct {
	ConfigNotFound       string `yaml:"config_not_found" json:"config_not_found"`
	ClipboardUnavailable string `yaml:"clipboard_unavailable" json:"clipboard_unavailable"`
	NoURL                string `yaml:"no_url" json:"no_url"`
	InvalidNumber        string `yaml:"invalid_number" json:"invalid_number"`
}

type CLITranslations struct {
	Watching      string `yaml:"watching" json:"watching"`
	WatchHint     string `yaml:"watch_hint" json:"watch_hint"`
	NothingYet    string `yaml:"nothing_yet" json:"nothing_yet"`
	NotInstagram  string `yaml:"not_instagram" json:"not_instagram"`
	LoginRequired string `yaml:"login_required" json:"login_required"`
}

// ServerTranslations holds translations for server messages
type ServerTranslations struct {
	NoConfigWarning string `yaml:"no_config_warning" json:"no_config_warning"`
	RunInitHint     string `yaml:"run_init_hint" json:"run_init_hint"`
}

// Lookup returns the text for a dotted key such as "toast.paste_msg"
func (t *Translations) Lookup(key string) (string, bool) {
	if t == nil || t.flat == nil {
		return "", false
	}
	s, ok := t.flat[key]
	return s, ok
}

// Keys accepted by Lookup for toast messages
const (
	KeyPasteMsg     = "toast.paste_msg"
	KeyPasteFailMsg = "toast.paste_fail_msg"
	KeyShareFailMsg = "toast.share_fail_msg"
)

var (
	translationsCache = make(map[string]*Translations)
	cacheMutex        sync.RWMutex
	defaultLang       = "en"
)

// SupportedLanguages returns all available language codes
var SupportedLanguages = []struct {
	Code string
	Name string
}{
	{"en", "English"},
	{"zh", "中文"},
}

// IsSupported reports whether a catalog exists for code
func IsSupported(code string) bool {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// DefaultLanguage returns the fallback language code
func DefaultLanguage() string {
	return defaultLang
}

// GetTranslations returns translations for the specified language
func GetTranslations(lang string) *Translations {
	cacheMutex.RLock()
	if t, ok := translationsCache[lang]; ok {
		cacheMutex.RUnlock()
		return t
	}
	cacheMutex.RUnlock()

	t, err := loadTranslations(lang)
	if err != nil {
		if lang != defaultLang {
			return GetTranslations(defaultLang)
		}
		return &Translations{}
	}

	cacheMutex.Lock()
	translationsCache[lang] = t
	cacheMutex.Unlock()

	return t
}

func loadTranslations(lang string) (*Translations, error) {
	filename := fmt.Sprintf("locales/%s.yml", lang)
	data, err := localesFS.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var t Translations
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	var sections map[string]map[string]string
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	t.flat = make(map[string]string)
	for section, entries := range sections {
		for key, text := range entries {
			t.flat[section+"."+key] = text
		}
	}

	return &t, nil
}

// T is a convenience function for getting translations
func T(lang string) *Translations {
	return GetTranslations(lang)
}
