// Package binding interpolates ${path} placeholders in template strings,
// used for page header and footer text (${title}, ${page}, ${pages},
// ${date}). Unknown paths are left in place so a typo stays visible
// instead of silently disappearing.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces every ${path.to.value} in text with the value found
// in data. Paths are dot-separated; a numeric segment indexes into a
// slice. Missing paths and nil data leave the placeholder untouched.
func Interpolate(text string, data map[string]interface{}) string {
	if data == nil || text == "" {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(exprPattern.FindStringSubmatch(match)[1])
		if path == "" {
			return match
		}
		if val, ok := resolve(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func resolve(data map[string]interface{}, path string) (interface{}, bool) {
	var current interface{} = data
	for _, segment := range strings.Split(path, ".") {
		switch c := current.(type) {
		case map[string]interface{}:
			val, ok := c[segment]
			if !ok {
				return nil, false
			}
			current = val
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(c) {
				return nil, false
			}
			current = c[idx]
		default:
			return nil, false
		}
	}
	return current, true
}
