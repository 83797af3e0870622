package export

import (
	"strings"
	"time"
)

const maxFilenameLen = 50

// SafeFilename strips characters that upset filesystems and collapses
// whitespace to underscores. Empty or fully-stripped input becomes
// "untitled".
func SafeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	if out == "" {
		return "untitled"
	}
	if len(out) > maxFilenameLen {
		out = out[:maxFilenameLen]
	}
	return out
}

// ResultsFilename builds the export name for a run, stamped to the
// second so consecutive runs never collide.
func ResultsFilename(jobTitle, ext string) string {
	ts := time.Now().Format("20060102_150405")
	return "LeadSprinter_Results_" + SafeFilename(jobTitle) + "_" + ts + "." + ext
}
