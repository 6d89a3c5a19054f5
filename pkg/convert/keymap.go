package convert

import (
	"strings"
	"unicode"

	apiConvert "csvcodec/pkg/api/convert"
)

var _ apiConvert.KeyMapper = (*snakeToCamel)(nil)

type snakeToCamel struct{}

// NewSnakeToCamelMapper maps snake_case column keys to camelCase.
func NewSnakeToCamelMapper() apiConvert.KeyMapper {
	return snakeToCamel{}
}

// MapKey implements convert.KeyMapper.
func (snakeToCamel) MapKey(key string) string {
	parts := strings.Split(key, "_")
	var sb strings.Builder
	wrote := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if !wrote {
			sb.WriteString(strings.ToLower(part))
			wrote = true
			continue
		}
		scalars := []rune(strings.ToLower(part))
		scalars[0] = unicode.ToUpper(scalars[0])
		sb.WriteString(string(scalars))
	}
	if !wrote {
		return key
	}
	return sb.String()
}
