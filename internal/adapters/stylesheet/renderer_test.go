package stylesheet_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fontpack/internal/adapters/stylesheet"
	"go.trai.ch/fontpack/internal/core/domain"
)

func set1Request() *domain.GenerationRequest {
	return &domain.GenerationRequest{
		FontName:    "set1",
		Formats:     domain.DefaultFormats(),
		Template:    domain.TemplateOptions{BaseSelector: ".icon", ClassPrefix: "icon-"},
		CSSFontsURL: "./",
	}
}

func set1Data(req *domain.GenerationRequest) stylesheet.Data {
	glyphs := []domain.Glyph{{Name: "home", Codepoint: 0xF101}, {Name: "star", Codepoint: 0xF102}}
	fonts := make(map[domain.Format][]byte)
	urls := make(map[domain.Format]string)
	for _, f := range req.Formats {
		fonts[f] = []byte("font-" + string(f))
		urls[f] = f.FileName(req.FontName)
	}
	return stylesheet.NewData(req, glyphs, fonts, urls)
}

func TestRenderer_CSS_Default(t *testing.T) {
	req := set1Request()
	css, err := stylesheet.New().CSS(req, set1Data(req))
	require.NoError(t, err)

	assert.Contains(t, css, `font-family: "set1";`)
	for _, name := range []string{"set1.eot", "set1.woff", "set1.woff2", "set1.ttf", "set1.svg"} {
		assert.Contains(t, css, `url("./`+name+`?`)
	}
	assert.Contains(t, css, `format("embedded-opentype")`)
	assert.Contains(t, css, `format("truetype")`)
	assert.Contains(t, css, "#iefix")
	assert.Contains(t, css, "#set1\")")
	assert.Contains(t, css, ".icon-home:before {\n\tcontent: \"\\f101\";")
	assert.Contains(t, css, ".icon-star:before {\n\tcontent: \"\\f102\";")

	// Sources follow request format order.
	assert.Less(t, strings.Index(css, "set1.eot"), strings.Index(css, "set1.woff?"))
	assert.Less(t, strings.Index(css, "set1.ttf"), strings.Index(css, "set1.svg"))
}

func TestRenderer_CSS_Deterministic(t *testing.T) {
	req := set1Request()
	renderer := stylesheet.New()

	first, err := renderer.CSS(req, set1Data(req))
	require.NoError(t, err)
	second, err := renderer.CSS(req, set1Data(req))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewData_SkipsFormatsWithoutURL(t *testing.T) {
	req := set1Request()
	data := stylesheet.NewData(req, nil, nil, map[domain.Format]string{domain.FormatWOFF: "set1.woff"})

	require.Len(t, data.Sources, 1)
	assert.True(t, strings.HasPrefix(data.Sources[0].URL, "./set1.woff?"))
	assert.Equal(t, "woff", data.Sources[0].Format)
}

func TestNewData_DuplicateGlyphsRenderedOnce(t *testing.T) {
	req := set1Request()
	glyphs := []domain.Glyph{{Name: "home", Codepoint: 0xF101}, {Name: "home", Codepoint: 0xF101}}
	data := stylesheet.NewData(req, glyphs, nil, nil)
	assert.Len(t, data.Glyphs, 1)
}

func TestRenderer_CSS_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.css.tmpl")
	tmpl := `{{range .Glyphs}}{{$.ClassPrefix}}{{.Name}}={{.Codepoint}};{{end}}`
	require.NoError(t, os.WriteFile(path, []byte(tmpl), 0o600))

	req := set1Request()
	req.CSSTemplate = &path

	css, err := stylesheet.New().CSS(req, set1Data(req))
	require.NoError(t, err)
	assert.Equal(t, "icon-home=f101;icon-star=f102;", css)
}

func TestRenderer_CSS_BadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{range}"), 0o600))

	req := set1Request()
	req.CSSTemplate = &path

	_, err := stylesheet.New().CSS(req, set1Data(req))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStylesheetFailed)
}

func TestRenderer_HTML(t *testing.T) {
	req := set1Request()
	renderer := stylesheet.New()
	data := set1Data(req)

	css, err := renderer.CSS(req, data)
	require.NoError(t, err)

	html, err := renderer.HTML(req, data, css)
	require.NoError(t, err)
	assert.Contains(t, html, "<title>set1</title>")
	assert.Contains(t, html, `class="glyph icon icon-home"`)
	assert.Contains(t, html, ".icon-star:before")
}
