// Package pattern compiles filename templates into identifier matchers.
//
// A template marks the identifier span with a run of placeholder characters ('_').
// Characters before the run are a literal prefix, characters after it a literal suffix:
//
//	"018842___"     prefix "018842", 3 digits, no suffix
//	"___-final"     3 digits followed by "-final"
//	"___"           bare: first digit run of at least 3 digits, identifier is its last 3 digits
//	""              no placeholder: first digit run of any length
//
// # Matching
//
// Extraction strips the file extension and searches the remaining name without anchoring.
// It never fails on arbitrary filenames; a name that does not match simply yields no identifier.
//
// # Usage
//
//	p, err := pattern.Compile("___")
//	if err != nil {
//	    return err
//	}
//	id, ok := p.Identifier("12345678901_report.pdf") // 901, true
package pattern
