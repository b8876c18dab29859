package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// vendor prefixes some gym machines prepend to exercise names
var vendorPrefixes = []string{
	"egym ",
	"technogym ",
}

// exerciseAliases maps common alternative names to the canonical
// standards-table key. Keys and values are already normalized.
var exerciseAliases = map[string]string{
	"chest press":         "bench press",
	"flat bench press":    "bench press",
	"barbell bench press": "bench press",
	"seated row":          "row",
	"barbell row":         "row",
	"cable row":           "row",
	"shoulder press":      "overhead press",
	"military press":      "overhead press",
	"pulldown":            "lat pulldown",
	"lat pull down":       "lat pulldown",
	"seated leg curl":     "leg curl",
	"lying leg curl":      "leg curl",
	"seated leg extension": "leg extension",
	"adductor machine":     "hip adduction",
	"abductor machine":     "hip abduction",
}

// NormalizeExerciseName turns a raw, user- or vendor-supplied exercise name
// into the canonical key used for standards lookups and best-PR grouping.
// Lower-cases, trims, strips known vendor prefixes, collapses whitespace and
// resolves aliases. Idempotent: normalizing an already normalized name is a
// no-op.
func NormalizeExerciseName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), " ")

	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimSpace(strings.TrimPrefix(name, prefix))
			break
		}
	}

	if canonical, ok := exerciseAliases[name]; ok {
		return canonical
	}
	return name
}

// DisplayName title-cases a canonical exercise name for UI output.
func DisplayName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}
