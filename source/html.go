package source

import (
	"context"
	"html"
	"strings"
	"sync"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/rs/zerolog/log"
)

var htmlConverter = sync.OnceValue(func() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
})

// htmlToMarkdown converts an HTML document to markdown. If the document
// cannot be converted its tags are stripped instead.
func htmlToMarkdown(ctx context.Context, htmlContent string) string {
	md, err := htmlConverter().ConvertString(htmlContent)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("HTML to markdown conversion failed, falling back to tag stripping")
		return stripFormatting(htmlContent)
	}
	return md
}

// markdownToHTML converts markdown text to HTML
func markdownToHTML(markdownText string) string {
	parser := mdparser.NewWithExtensions(mdparser.CommonExtensions | mdparser.NoEmptyLineBeforeBlock)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return string(markdown.Render(parser.Parse([]byte(markdownText)), renderer))
}

// Block level elements end a line and table cells are separated by a space,
// so that words in neighbouring elements never run together once the tags
// are gone.
var blockBreaks = strings.NewReplacer(
	"</p>", "\n",
	"</h1>", "\n",
	"</h2>", "\n",
	"</h3>", "\n",
	"</h4>", "\n",
	"</h5>", "\n",
	"</h6>", "\n",
	"</li>", "\n",
	"</ul>", "\n",
	"</ol>", "\n",
	"</pre>", "\n",
	"</blockquote>", "\n",
	"</div>", "\n",
	"</tr>", "\n",
	"</td>", " ",
	"</th>", " ",
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"<hr>", "\n",
	"<hr/>", "\n",
	"<hr />", "\n",
)

// stripFormatting flattens HTML into plain text.
func stripFormatting(s string) string {
	return html.UnescapeString(strip.StripTags(blockBreaks.Replace(s)))
}
