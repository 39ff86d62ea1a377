package memdom

// knownTags is the HTML element set accepted by CreateElement.
var knownTags = map[string]bool{}

func init() {
	for _, tag := range []string{
		"a", "abbr", "address", "area", "article", "aside", "audio",
		"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
		"canvas", "caption", "cite", "code", "col", "colgroup",
		"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
		"em", "embed", "fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
		"i", "iframe", "img", "input", "ins", "kbd", "label", "legend", "li", "link",
		"main", "map", "mark", "menu", "meta", "meter", "nav", "noscript",
		"object", "ol", "optgroup", "option", "output", "p", "param", "picture", "pre", "progress",
		"q", "rp", "rt", "ruby", "s", "samp", "script", "search", "section", "select", "slot",
		"small", "source", "span", "strong", "style", "sub", "summary", "sup",
		"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead", "time",
		"title", "tr", "track", "u", "ul", "var", "video", "wbr",
	} {
		knownTags[tag] = true
	}
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// rawTextElements hold text that is serialized without escaping.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// IsKnownTag reports whether CreateElement accepts tag.
func IsKnownTag(tag string) bool {
	return knownTags[tag]
}
