package el

import "github.com/domkit-dev/domkit/pkg/dom"

// Element helpers, one per HTML tag. Var builds <var>.

func (b *Builder) A(attrs Attrs, children ...any) dom.Element          { return b.Create("a", attrs, children...) }
func (b *Builder) Abbr(attrs Attrs, children ...any) dom.Element       { return b.Create("abbr", attrs, children...) }
func (b *Builder) Address(attrs Attrs, children ...any) dom.Element    { return b.Create("address", attrs, children...) }
func (b *Builder) Area(attrs Attrs, children ...any) dom.Element       { return b.Create("area", attrs, children...) }
func (b *Builder) Article(attrs Attrs, children ...any) dom.Element    { return b.Create("article", attrs, children...) }
func (b *Builder) Aside(attrs Attrs, children ...any) dom.Element      { return b.Create("aside", attrs, children...) }
func (b *Builder) Audio(attrs Attrs, children ...any) dom.Element      { return b.Create("audio", attrs, children...) }
func (b *Builder) B(attrs Attrs, children ...any) dom.Element          { return b.Create("b", attrs, children...) }
func (b *Builder) Base(attrs Attrs, children ...any) dom.Element       { return b.Create("base", attrs, children...) }
func (b *Builder) Bdi(attrs Attrs, children ...any) dom.Element        { return b.Create("bdi", attrs, children...) }
func (b *Builder) Bdo(attrs Attrs, children ...any) dom.Element        { return b.Create("bdo", attrs, children...) }
func (b *Builder) Blockquote(attrs Attrs, children ...any) dom.Element { return b.Create("blockquote", attrs, children...) }
func (b *Builder) Body(attrs Attrs, children ...any) dom.Element       { return b.Create("body", attrs, children...) }
func (b *Builder) Br(attrs Attrs, children ...any) dom.Element         { return b.Create("br", attrs, children...) }
func (b *Builder) Button(attrs Attrs, children ...any) dom.Element     { return b.Create("button", attrs, children...) }
func (b *Builder) Canvas(attrs Attrs, children ...any) dom.Element     { return b.Create("canvas", attrs, children...) }
func (b *Builder) Caption(attrs Attrs, children ...any) dom.Element    { return b.Create("caption", attrs, children...) }
func (b *Builder) Cite(attrs Attrs, children ...any) dom.Element       { return b.Create("cite", attrs, children...) }
func (b *Builder) Code(attrs Attrs, children ...any) dom.Element       { return b.Create("code", attrs, children...) }
func (b *Builder) Col(attrs Attrs, children ...any) dom.Element        { return b.Create("col", attrs, children...) }
func (b *Builder) Colgroup(attrs Attrs, children ...any) dom.Element   { return b.Create("colgroup", attrs, children...) }
func (b *Builder) Data(attrs Attrs, children ...any) dom.Element       { return b.Create("data", attrs, children...) }
func (b *Builder) Datalist(attrs Attrs, children ...any) dom.Element   { return b.Create("datalist", attrs, children...) }
func (b *Builder) Dd(attrs Attrs, children ...any) dom.Element         { return b.Create("dd", attrs, children...) }
func (b *Builder) Del(attrs Attrs, children ...any) dom.Element        { return b.Create("del", attrs, children...) }
func (b *Builder) Details(attrs Attrs, children ...any) dom.Element    { return b.Create("details", attrs, children...) }
func (b *Builder) Dfn(attrs Attrs, children ...any) dom.Element        { return b.Create("dfn", attrs, children...) }
func (b *Builder) Dialog(attrs Attrs, children ...any) dom.Element     { return b.Create("dialog", attrs, children...) }
func (b *Builder) Div(attrs Attrs, children ...any) dom.Element        { return b.Create("div", attrs, children...) }
func (b *Builder) Dl(attrs Attrs, children ...any) dom.Element         { return b.Create("dl", attrs, children...) }
func (b *Builder) Dt(attrs Attrs, children ...any) dom.Element         { return b.Create("dt", attrs, children...) }
func (b *Builder) Em(attrs Attrs, children ...any) dom.Element         { return b.Create("em", attrs, children...) }
func (b *Builder) Embed(attrs Attrs, children ...any) dom.Element      { return b.Create("embed", attrs, children...) }
func (b *Builder) Fieldset(attrs Attrs, children ...any) dom.Element   { return b.Create("fieldset", attrs, children...) }
func (b *Builder) Figcaption(attrs Attrs, children ...any) dom.Element { return b.Create("figcaption", attrs, children...) }
func (b *Builder) Figure(attrs Attrs, children ...any) dom.Element     { return b.Create("figure", attrs, children...) }
func (b *Builder) Footer(attrs Attrs, children ...any) dom.Element     { return b.Create("footer", attrs, children...) }
func (b *Builder) Form(attrs Attrs, children ...any) dom.Element       { return b.Create("form", attrs, children...) }
func (b *Builder) H1(attrs Attrs, children ...any) dom.Element         { return b.Create("h1", attrs, children...) }
func (b *Builder) H2(attrs Attrs, children ...any) dom.Element         { return b.Create("h2", attrs, children...) }
func (b *Builder) H3(attrs Attrs, children ...any) dom.Element         { return b.Create("h3", attrs, children...) }
func (b *Builder) H4(attrs Attrs, children ...any) dom.Element         { return b.Create("h4", attrs, children...) }
func (b *Builder) H5(attrs Attrs, children ...any) dom.Element         { return b.Create("h5", attrs, children...) }
func (b *Builder) H6(attrs Attrs, children ...any) dom.Element         { return b.Create("h6", attrs, children...) }
func (b *Builder) Head(attrs Attrs, children ...any) dom.Element       { return b.Create("head", attrs, children...) }
func (b *Builder) Header(attrs Attrs, children ...any) dom.Element     { return b.Create("header", attrs, children...) }
func (b *Builder) Hgroup(attrs Attrs, children ...any) dom.Element     { return b.Create("hgroup", attrs, children...) }
func (b *Builder) Hr(attrs Attrs, children ...any) dom.Element         { return b.Create("hr", attrs, children...) }
func (b *Builder) Html(attrs Attrs, children ...any) dom.Element       { return b.Create("html", attrs, children...) }
func (b *Builder) I(attrs Attrs, children ...any) dom.Element          { return b.Create("i", attrs, children...) }
func (b *Builder) Iframe(attrs Attrs, children ...any) dom.Element     { return b.Create("iframe", attrs, children...) }
func (b *Builder) Img(attrs Attrs, children ...any) dom.Element        { return b.Create("img", attrs, children...) }
func (b *Builder) Input(attrs Attrs, children ...any) dom.Element      { return b.Create("input", attrs, children...) }
func (b *Builder) Ins(attrs Attrs, children ...any) dom.Element        { return b.Create("ins", attrs, children...) }
func (b *Builder) Kbd(attrs Attrs, children ...any) dom.Element        { return b.Create("kbd", attrs, children...) }
func (b *Builder) Label(attrs Attrs, children ...any) dom.Element      { return b.Create("label", attrs, children...) }
func (b *Builder) Legend(attrs Attrs, children ...any) dom.Element     { return b.Create("legend", attrs, children...) }
func (b *Builder) Li(attrs Attrs, children ...any) dom.Element         { return b.Create("li", attrs, children...) }
func (b *Builder) Link(attrs Attrs, children ...any) dom.Element       { return b.Create("link", attrs, children...) }
func (b *Builder) Main(attrs Attrs, children ...any) dom.Element       { return b.Create("main", attrs, children...) }
func (b *Builder) Map(attrs Attrs, children ...any) dom.Element        { return b.Create("map", attrs, children...) }
func (b *Builder) Mark(attrs Attrs, children ...any) dom.Element       { return b.Create("mark", attrs, children...) }
func (b *Builder) Meta(attrs Attrs, children ...any) dom.Element       { return b.Create("meta", attrs, children...) }
func (b *Builder) Meter(attrs Attrs, children ...any) dom.Element      { return b.Create("meter", attrs, children...) }
func (b *Builder) Nav(attrs Attrs, children ...any) dom.Element        { return b.Create("nav", attrs, children...) }
func (b *Builder) Noscript(attrs Attrs, children ...any) dom.Element   { return b.Create("noscript", attrs, children...) }
func (b *Builder) Object(attrs Attrs, children ...any) dom.Element     { return b.Create("object", attrs, children...) }
func (b *Builder) Ol(attrs Attrs, children ...any) dom.Element         { return b.Create("ol", attrs, children...) }
func (b *Builder) Optgroup(attrs Attrs, children ...any) dom.Element   { return b.Create("optgroup", attrs, children...) }
func (b *Builder) Option(attrs Attrs, children ...any) dom.Element     { return b.Create("option", attrs, children...) }
func (b *Builder) Output(attrs Attrs, children ...any) dom.Element     { return b.Create("output", attrs, children...) }
func (b *Builder) P(attrs Attrs, children ...any) dom.Element          { return b.Create("p", attrs, children...) }
func (b *Builder) Picture(attrs Attrs, children ...any) dom.Element    { return b.Create("picture", attrs, children...) }
func (b *Builder) Pre(attrs Attrs, children ...any) dom.Element        { return b.Create("pre", attrs, children...) }
func (b *Builder) Progress(attrs Attrs, children ...any) dom.Element   { return b.Create("progress", attrs, children...) }
func (b *Builder) Q(attrs Attrs, children ...any) dom.Element          { return b.Create("q", attrs, children...) }
func (b *Builder) Rp(attrs Attrs, children ...any) dom.Element         { return b.Create("rp", attrs, children...) }
func (b *Builder) Rt(attrs Attrs, children ...any) dom.Element         { return b.Create("rt", attrs, children...) }
func (b *Builder) Ruby(attrs Attrs, children ...any) dom.Element       { return b.Create("ruby", attrs, children...) }
func (b *Builder) S(attrs Attrs, children ...any) dom.Element          { return b.Create("s", attrs, children...) }
func (b *Builder) Samp(attrs Attrs, children ...any) dom.Element       { return b.Create("samp", attrs, children...) }
func (b *Builder) Script(attrs Attrs, children ...any) dom.Element     { return b.Create("script", attrs, children...) }
func (b *Builder) Section(attrs Attrs, children ...any) dom.Element    { return b.Create("section", attrs, children...) }
func (b *Builder) Select(attrs Attrs, children ...any) dom.Element     { return b.Create("select", attrs, children...) }
func (b *Builder) Slot(attrs Attrs, children ...any) dom.Element       { return b.Create("slot", attrs, children...) }
func (b *Builder) Small(attrs Attrs, children ...any) dom.Element      { return b.Create("small", attrs, children...) }
func (b *Builder) Source(attrs Attrs, children ...any) dom.Element     { return b.Create("source", attrs, children...) }
func (b *Builder) Span(attrs Attrs, children ...any) dom.Element       { return b.Create("span", attrs, children...) }
func (b *Builder) Strong(attrs Attrs, children ...any) dom.Element     { return b.Create("strong", attrs, children...) }
func (b *Builder) Style(attrs Attrs, children ...any) dom.Element      { return b.Create("style", attrs, children...) }
func (b *Builder) Sub(attrs Attrs, children ...any) dom.Element        { return b.Create("sub", attrs, children...) }
func (b *Builder) Summary(attrs Attrs, children ...any) dom.Element    { return b.Create("summary", attrs, children...) }
func (b *Builder) Sup(attrs Attrs, children ...any) dom.Element        { return b.Create("sup", attrs, children...) }
func (b *Builder) Table(attrs Attrs, children ...any) dom.Element      { return b.Create("table", attrs, children...) }
func (b *Builder) Tbody(attrs Attrs, children ...any) dom.Element      { return b.Create("tbody", attrs, children...) }
func (b *Builder) Td(attrs Attrs, children ...any) dom.Element         { return b.Create("td", attrs, children...) }
func (b *Builder) Template(attrs Attrs, children ...any) dom.Element   { return b.Create("template", attrs, children...) }
func (b *Builder) Textarea(attrs Attrs, children ...any) dom.Element   { return b.Create("textarea", attrs, children...) }
func (b *Builder) Tfoot(attrs Attrs, children ...any) dom.Element      { return b.Create("tfoot", attrs, children...) }
func (b *Builder) Th(attrs Attrs, children ...any) dom.Element         { return b.Create("th", attrs, children...) }
func (b *Builder) Thead(attrs Attrs, children ...any) dom.Element      { return b.Create("thead", attrs, children...) }
func (b *Builder) Time(attrs Attrs, children ...any) dom.Element       { return b.Create("time", attrs, children...) }
func (b *Builder) Title(attrs Attrs, children ...any) dom.Element      { return b.Create("title", attrs, children...) }
func (b *Builder) Tr(attrs Attrs, children ...any) dom.Element         { return b.Create("tr", attrs, children...) }
func (b *Builder) Track(attrs Attrs, children ...any) dom.Element      { return b.Create("track", attrs, children...) }
func (b *Builder) U(attrs Attrs, children ...any) dom.Element          { return b.Create("u", attrs, children...) }
func (b *Builder) Ul(attrs Attrs, children ...any) dom.Element         { return b.Create("ul", attrs, children...) }
func (b *Builder) Var(attrs Attrs, children ...any) dom.Element        { return b.Create("var", attrs, children...) }
func (b *Builder) Video(attrs Attrs, children ...any) dom.Element      { return b.Create("video", attrs, children...) }
func (b *Builder) Wbr(attrs Attrs, children ...any) dom.Element        { return b.Create("wbr", attrs, children...) }
