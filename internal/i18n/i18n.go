// Package i18n provides localized labels and messages for the cardinput
// terminal host. Translation files are embedded YAML files loaded with go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/cardinput/pkg/cardnumber"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator translates message IDs into one language.
// Messages missing in that language fall back to English.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded locales and creates a translator for lang
// (a BCP 47 tag such as "en" or "ru").
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle, err := loadBundle()
	if err != nil {
		return nil, err
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), DefaultLanguage),
		tag:       tag,
	}, nil
}

func loadBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
		}
	}
	return bundle, nil
}

// Language returns the configured language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T translates a message ID. Unknown IDs are returned unchanged.
func (t *Translator) T(messageID string) string {
	return t.localize(messageID, messageID)
}

func (t *Translator) localize(messageID, fallback string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

// Network returns the localized title of a network, empty for unknown networks.
func (t *Translator) Network(n cardnumber.Network) string {
	if !n.IsKnown() {
		return ""
	}
	return t.localize("network."+n.String(), n.Title())
}

// State returns the localized validation state.
func (t *Translator) State(s cardnumber.State) string {
	return t.localize("state."+s.String(), s.String())
}

// Error returns the localized message of a validation error, empty for nil.
func (t *Translator) Error(err *cardnumber.CardError) string {
	if err == nil {
		return ""
	}
	switch err.Code {
	case cardnumber.CodeCardInfoNotFound:
		return t.localize("error.card_info_not_found", err.Message)
	default:
		return err.Message
	}
}
