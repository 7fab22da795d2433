package htmlfilter_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/njchilds90/htmlfilter"
)

func ExampleFilterString() {
	rules := &htmlfilter.RuleSet{
		Accept: []htmlfilter.AcceptRule{
			{Element: "b"},
			{Element: "a", Attributes: []string{"href"}},
		},
		Remove: []string{"script"},
	}
	input := `<div><b>Hello</b><script>alert('xss')</script><a href="/about" onclick="steal()">about</a></div>`
	clean, _ := htmlfilter.FilterString(input, rules)
	fmt.Println(clean)
	// Output: <b>Hello</b><a href="/about">about</a>
}

func ExampleParseRules() {
	rules, _ := htmlfilter.ParseRules([]byte(`
accept:
  - element: i
remove:
  - style
`))
	clean, _ := htmlfilter.FilterString(`<p><i>kept</i> text</p><style>p{}</style>`, rules)
	fmt.Println(clean)
	// Output: <i>kept</i> text
}

func ExampleRemover() {
	var buf bytes.Buffer
	r := htmlfilter.NewRemover(htmlfilter.NewWriter(&buf))
	r.AcceptElement("b", nil)
	r.AcceptElement("i", nil)
	r.AcceptElement("u", nil)
	r.AcceptElement("a", []string{"href"})
	r.RemoveElement("script")

	_ = htmlfilter.Tokenize(strings.NewReader(`<p><u>underlined</u> and <q>quoted</q></p>`), r)
	fmt.Println(buf.String())
	// Output: <u>underlined</u> and quoted
}
