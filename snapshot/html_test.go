package snapshot

import (
	"testing"
)

func TestEscape(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{
			input: "plain",
			want:  "plain",
		},
		{
			input: "a & b",
			want:  "a &amp; b",
		},
		{
			input: "<script>",
			want:  "&lt;script&gt;",
		},
		{
			input: `say "hi"`,
			want:  "say &quot;hi&quot;",
		},
		{
			input: "it's fine",
			want:  "it's fine",
		},
		{
			input: "&amp;",
			want:  "&amp;amp;",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := Escape(tc.input)
			if got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}

func TestElemMarkup(t *testing.T) {
	testCases := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "empty element closes",
			node: &Elem{Name: "div"},
			want: "<div></div>",
		},
		{
			name: "attribute values escaped",
			node: &Elem{Name: "div", Attrs: []Attr{{Name: "class", Value: `a"b`}}},
			want: `<div class="a&quot;b"></div>`,
		},
		{
			name: "raw attribute written verbatim",
			node: &Elem{Name: "img", Attrs: []Attr{{Name: "src", Value: "a&b.jpg", Raw: true}}},
			want: `<img src="a&b.jpg">`,
		},
		{
			name: "img is void",
			node: &Elem{Name: "img", Attrs: []Attr{{Name: "alt", Value: "x"}}},
			want: `<img alt="x">`,
		},
		{
			name: "meta is void",
			node: &Elem{Name: "meta", Attrs: []Attr{{Name: "charset", Value: "utf-8"}}},
			want: `<meta charset="utf-8">`,
		},
		{
			name: "children nest in order",
			node: &Elem{Name: "p", Children: []Node{&Text{Content: "a <"}, &Elem{Name: "br"}, &Text{Content: "b"}}},
			want: "<p>a &lt;<br>b</p>",
		},
		{
			name: "raw child unescaped",
			node: &Elem{Name: "div", Children: []Node{Raw("<em>kept</em>")}},
			want: "<div><em>kept</em></div>",
		},
		{
			name: "fragment has no wrapper",
			node: Fragment{&Text{Content: "a"}, &Elem{Name: "hr"}, &Text{Content: "b"}},
			want: "a<hr>b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Markup(tc.node)
			if got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}
