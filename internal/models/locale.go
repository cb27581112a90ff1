package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type localeEntry struct {
	Code string
	Text string
}

// LocaleString is a name or description field as the commerce API returns
// it: either a plain string or an object keyed by locale code. Decoding
// preserves the key order of the object so the fallback chain is
// deterministic instead of depending on map iteration.
type LocaleString struct {
	plain   string
	locales []localeEntry
}

// NewLocaleString builds the plain-string form.
func NewLocaleString(s string) LocaleString {
	return LocaleString{plain: s}
}

// NewLocalizedString builds the locale-mapping form. Entries keep the order
// they are given in.
func NewLocalizedString(pairs ...[2]string) LocaleString {
	ls := LocaleString{}
	for _, p := range pairs {
		ls.locales = append(ls.locales, localeEntry{Code: p[0], Text: p[1]})
	}

	return ls
}

// Resolve picks the display string: "es", then "pt", then the first locale
// present, then the plain string form.
func (l LocaleString) Resolve() string {
	for _, want := range []string{"es", "pt"} {
		for _, e := range l.locales {
			if e.Code == want && e.Text != "" {
				return e.Text
			}
		}
	}

	for _, e := range l.locales {
		if e.Text != "" {
			return e.Text
		}
	}

	return l.plain
}

// Get returns the text for one locale code.
func (l LocaleString) Get(code string) (string, bool) {
	for _, e := range l.locales {
		if e.Code == code {
			return e.Text, true
		}
	}

	return "", false
}

// Locales returns the locale codes in decoded order.
func (l LocaleString) Locales() []string {
	codes := make([]string, 0, len(l.locales))
	for _, e := range l.locales {
		codes = append(codes, e.Code)
	}

	return codes
}

func (l LocaleString) IsZero() bool {
	return l.plain == "" && len(l.locales) == 0
}

// Map applies fn to every localized value, or to the plain value when no
// locale mapping exists.
func (l LocaleString) Map(fn func(string) string) LocaleString {
	if len(l.locales) == 0 {
		return LocaleString{plain: fn(l.plain)}
	}

	out := LocaleString{}
	for _, e := range l.locales {
		out.locales = append(out.locales, localeEntry{Code: e.Code, Text: fn(e.Text)})
	}

	return out
}

func (l *LocaleString) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case string:
		*l = LocaleString{plain: t}

		return nil
	case json.Delim:
		if t != '{' {
			return fmt.Errorf("locale string: unexpected token %v", t)
		}
	case nil:
		*l = LocaleString{}

		return nil
	default:
		return fmt.Errorf("locale string: unexpected token %v", tok)
	}

	out := LocaleString{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("locale string: non-string key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		text, _ := valTok.(string)
		out.locales = append(out.locales, localeEntry{Code: key, Text: text})
	}

	*l = out

	return nil
}

func (l LocaleString) MarshalJSON() ([]byte, error) {
	if len(l.locales) == 0 {
		return json.Marshal(l.plain)
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range l.locales {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Code)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(e.Text)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
