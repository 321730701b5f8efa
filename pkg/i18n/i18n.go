package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed messages/*.json
var messagesFS embed.FS

// Supported locales
const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
	DefaultLocale    = LocalePortuguese
)

type localeKey struct{}

var (
	messages     map[string]map[string]interface{}
	messagesOnce sync.Once
)

func loadMessages() {
	messagesOnce.Do(func() {
		messages = make(map[string]map[string]interface{})

		for _, locale := range []string{LocaleEnglish, LocalePortuguese} {
			data, err := messagesFS.ReadFile("messages/" + locale + ".json")
			if err != nil {
				continue
			}

			var msg map[string]interface{}
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}

			messages[locale] = msg
		}
	})
}

// Localizer handles message localization
type Localizer struct {
	locale string
}

// NewLocalizer creates a new localizer for the given locale
func NewLocalizer(locale string) *Localizer {
	loadMessages()

	if locale != LocaleEnglish && locale != LocalePortuguese {
		locale = DefaultLocale
	}

	return &Localizer{locale: locale}
}

// LocalizerFromContext creates a localizer from context
func LocalizerFromContext(ctx context.Context) *Localizer {
	return NewLocalizer(GetLocaleFromContext(ctx))
}

// T translates a message key with optional parameters
func (l *Localizer) T(key string, params ...map[string]string) string {
	loadMessages()

	msg := lookup(key, l.locale)
	if msg == "" {
		msg = lookup(key, DefaultLocale)
	}
	if msg == "" {
		return key
	}

	if len(params) > 0 {
		for k, v := range params[0] {
			msg = strings.ReplaceAll(msg, "{"+k+"}", v)
		}
	}

	return msg
}

// lookup resolves a dot-notation key in the given locale
func lookup(key string, locale string) string {
	current, ok := messages[locale]
	if !ok {
		return ""
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			str, _ := current[part].(string)
			return str
		}
		nested, ok := current[part].(map[string]interface{})
		if !ok {
			return ""
		}
		current = nested
	}

	return ""
}

// GetLocale returns the current locale
func (l *Localizer) GetLocale() string {
	return l.locale
}

// WithLocale adds locale to context
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// GetLocaleFromContext retrieves locale from context
func GetLocaleFromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(localeKey{}).(string); ok && locale != "" {
		return locale
	}
	return DefaultLocale
}

// ParseAcceptLanguage picks the best supported locale from an Accept-Language header.
// Portuguese wins ties since the dashboard data is Brazilian.
func ParseAcceptLanguage(header string) string {
	if header == "" {
		return DefaultLocale
	}

	header = strings.ToLower(header)
	if strings.Contains(header, "pt") {
		return LocalePortuguese
	}
	if strings.Contains(header, "en") {
		return LocaleEnglish
	}

	return DefaultLocale
}

// T translates using the default locale
func T(key string, params ...map[string]string) string {
	return NewLocalizer(DefaultLocale).T(key, params...)
}

// TFromContext translates using locale from context
func TFromContext(ctx context.Context, key string, params ...map[string]string) string {
	return LocalizerFromContext(ctx).T(key, params...)
}
