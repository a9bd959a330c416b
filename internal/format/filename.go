package format

import (
	"regexp"
	"strings"
)

const (
	filePrefix    = "Struk"
	defaultOwner  = "customer"
	defaultDateID = "invoice"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName builds the base name shared by image and document exports:
// Struk_<shop>_<owner>_<DD-MM-YYYY>, without an extension.
func FileName(shop, owner, date string) string {
	ownerPart := defaultOwner
	if o := strings.TrimSpace(owner); o != "" {
		ownerPart = underscore(o)
	}

	datePart, ok := ShortDate(date)
	if !ok {
		datePart = defaultDateID
	}

	return strings.Join([]string{filePrefix, underscore(strings.TrimSpace(shop)), ownerPart, datePart}, "_")
}

func underscore(s string) string {
	s = whitespaceRun.ReplaceAllString(s, "_")

	// Owner names end up on disk; keep them inside the target directory.
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '-'
		}

		return r
	}, s)
}
