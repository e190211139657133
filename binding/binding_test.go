package binding

import "testing"

// TestInterpolate covers simple keys, dotted paths, slice indexing and
// non-string values.
func TestInterpolate(t *testing.T) {
	data := map[string]interface{}{
		"title": "Amazing Grace",
		"page":  2,
		"meta": map[string]interface{}{
			"authors": []interface{}{"Newton", "Anon"},
		},
	}
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"no placeholders", "no placeholders"},
		{"${title}", "Amazing Grace"},
		{"p. ${page}", "p. 2"},
		{"${meta.authors.0} & ${meta.authors.1}", "Newton & Anon"},
		{"${ title }", "Amazing Grace"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestInterpolateUnknownPaths asserts unresolved placeholders stay
// visible instead of vanishing.
func TestInterpolateUnknownPaths(t *testing.T) {
	data := map[string]interface{}{"title": "x", "list": []interface{}{"a"}}
	cases := []string{
		"${missing}",
		"${title.too.deep}",
		"${list.5}",
		"${list.notanumber}",
		"${}",
	}
	for _, in := range cases {
		if got := Interpolate(in, data); got != in {
			t.Fatalf("Interpolate(%q) = %q, want unchanged", in, got)
		}
	}
	if got := Interpolate("${title}", nil); got != "${title}" {
		t.Fatalf("nil data = %q, want unchanged", got)
	}
}
