package pipeline

import (
	"crypto/md5" // #nosec G501 -- content fingerprint, not a security boundary
	"encoding/hex"
	"regexp"
	"strings"
)

// Inline markers replaced by opening tags only.
const (
	boldMarker     = "**"
	emphasisMarker = "__"
	boldTag        = "<b>"
	emphasisTag    = "<em>"
)

// Precompiled regex patterns for inline substitutions.
var (
	// [[text]] -> md5(text)
	hashPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

	// ((text)) -> text without c/C
	stripPattern = regexp.MustCompile(`\(\((.*?)\)\)`)

	strippedChars = regexp.MustCompile(`[cC]`)
)

// TransformInline applies every inline rule to a single line, in order:
// hash substitution, character strip, bold marker, emphasis marker.
func TransformInline(line string) string {
	line = substituteHashes(line)
	line = stripMarkedChars(line)
	line = strings.ReplaceAll(line, boldMarker, boldTag)
	line = strings.ReplaceAll(line, emphasisMarker, emphasisTag)
	return line
}

// ApplySubstitutions runs the two content substitutions ([[...]] and ((...)))
// without the bold/emphasis markers. Engines that understand Markdown emphasis
// natively get their input through this instead of TransformInline.
func ApplySubstitutions(content string) string {
	return stripMarkedChars(substituteHashes(content))
}

// ContentHash returns the lowercase hex MD5 digest of s.
func ContentHash(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

func substituteHashes(s string) string {
	return hashPattern.ReplaceAllStringFunc(s, func(m string) string {
		return ContentHash(hashPattern.FindStringSubmatch(m)[1])
	})
}

func stripMarkedChars(s string) string {
	return stripPattern.ReplaceAllStringFunc(s, func(m string) string {
		return strippedChars.ReplaceAllString(stripPattern.FindStringSubmatch(m)[1], "")
	})
}
