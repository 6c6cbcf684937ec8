package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/birthday-board/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders the notification texts in the configured language.
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator loads the embedded locale files and builds a localizer
// for lang, falling back to English for missing messages.
func NewTranslator(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return &Translator{localizer: i18n.NewLocalizer(bundle, lang)}
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
	}

	return &Translator{localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage)}
}

// WeeklySummary builds the announcement for one generated board.
func (t *Translator) WeeklySummary(count int, url string) string {
	key := config.TKeyNotifWeek
	if count == 0 {
		key = config.TKeyNotifNone
	}

	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:   key,
		PluralCount: count,
		TemplateData: map[string]interface{}{
			"Count": count,
			"URL":   url,
		},
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return url
	}
	return msg
}
