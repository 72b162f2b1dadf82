package symbols

import "strings"

// ImageName derives the file name stem for a symbol-image token.
//
// Every run of capital letters is marked with a prefix 'L', keeping names
// distinct on case-insensitive file systems: "Leftarrow" becomes "LLeftarrow",
// "varGamma" becomes "varLGamma".
func ImageName(token string) string {
	var sb strings.Builder
	inCaps := false
	for _, r := range token {
		if 'A' <= r && r <= 'Z' {
			if !inCaps {
				sb.WriteRune('L')
			}
			inCaps = true
		} else {
			inCaps = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
