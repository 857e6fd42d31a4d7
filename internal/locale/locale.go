// Package locale holds the translated response messages and the severity
// table for error codes. Both are data, not logic: handlers reference codes
// like "articleApi-1000" and the formatter resolves them here.
package locale

import (
	"errors"
	"strings"
)

// DefaultLang is used when the requested language has no table
const DefaultLang = "en-US"

var messages = map[string]map[string]string{
	"en-US": enUS,
	"zh-TW": zhTW,
}

// levels maps error codes to severity. Codes absent from the table
// default to "error".
var levels = map[string]string{
	"indexApi-1000":       "warning",
	"authMiddleware-1000": "warning",
	"authMiddleware-1001": "warning",
	"dataMiddleware-1000": "warning",
	"dataMiddleware-1001": "warning",
	"articleApi-1000":     "warning",
	"articleApi-1003":     "warning",
	"articleApi-1005":     "warning",
	"tagApi-1000":         "warning",
	"tagApi-1003":         "warning",
	"tagApi-1005":         "warning",
	"commentApi-1002":     "warning",
}

// Normalize maps an Accept-Language value to a supported language tag
func Normalize(lang string) string {
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.TrimSpace(lang)
	switch strings.ToLower(lang) {
	case "zh-tw", "zh-hant", "zh":
		return "zh-TW"
	default:
		return DefaultLang
	}
}

// Message resolves a full message key such as "error-articleApi-1000" for
// the given language. It falls back to the default language and returns
// false when the key is unknown everywhere.
func Message(lang, key string) (string, bool) {
	if table, ok := messages[Normalize(lang)]; ok {
		if msg, ok := table[key]; ok {
			return msg, true
		}
	}
	if msg, ok := messages[DefaultLang][key]; ok {
		return msg, true
	}
	return "", false
}

// Level returns the severity for an error code such as "articleApi-1000"
func Level(code string) string {
	if level, ok := levels[code]; ok {
		return level
	}
	return "error"
}

// Coded builds a translatable error carrying a domain/layer/code triple.
// The response formatter recognizes the triple and resolves it through the
// message tables instead of echoing the raw text.
func Coded(domain, layer, code string) error {
	return errors.New(domain + "," + layer + "," + code)
}

// ParseCoded splits an error message back into its triple. It reports
// false for anything that is not a 3-part comma-separated message.
func ParseCoded(err error) (domain, layer, code string, ok bool) {
	if err == nil {
		return "", "", "", false
	}
	parts := strings.Split(err.Error(), ",")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// CodedKey assembles the message-table key for a parsed triple, e.g.
// ("article", "model", "1000") -> "error-articleModel-1000".
func CodedKey(domain, layer, code string) string {
	return "error-" + domain + upperFirst(layer) + "-" + code
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
