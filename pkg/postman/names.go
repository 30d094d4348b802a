package postman

import (
	"strings"
	"unicode"
)

const controllerSuffix = "Controller"

// RequestName turns a camelCase handler identity into a display name:
// the first rune is uppercased and a space is inserted wherever a
// lowercase letter is directly followed by an uppercase one.
//
//	getDíjById -> Get Díj By Id
func RequestName(handler string) string {
	runes := []rune(handler)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(handler) + 8)

	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		if i+1 < len(runes) && unicode.IsLower(r) && unicode.IsUpper(runes[i+1]) {
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// FolderName strips the trailing Controller qualifier from a controller name.
func FolderName(controller string) string {
	return strings.TrimSuffix(controller, controllerSuffix)
}
