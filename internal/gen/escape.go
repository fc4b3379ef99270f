package gen

import "strings"

// jsStringEscaper also escapes "<" so a value can never close the
// surrounding <script> block.
var jsStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	"<", `\u003c`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// markupEscaper escapes characters Svelte would read as markup or as the
// start of an expression.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
	"{", "&#123;",
	"}", "&#125;",
)

// jsString quotes s as a double-quoted script string literal.
func jsString(s string) string {
	return `"` + jsStringEscaper.Replace(s) + `"`
}

func escapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

func literalAttr(key, value string) string {
	return key + `="` + escapeMarkup(value) + `"`
}
