package datastore

import (
	"reflect"
	"strings"
	"time"
	"unicode"
)

// toRecord converts a struct into a row keyed by snake_case field names.
// A `db:"name"` tag overrides the key and `db:"-"` skips the field. Nil
// pointers become NULL and times are stored as RFC 3339 text.
func toRecord(value any) map[string]any {
	record := make(map[string]any)

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return record
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return record
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := toSnakeCase(field.Name)
		if tag := field.Tag.Get("db"); tag == "-" {
			continue
		} else if tag != "" {
			key = tag
		}

		record[key] = columnValue(v.Field(i))
	}
	return record
}

func columnValue(value reflect.Value) any {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	if ts, ok := value.Interface().(time.Time); ok {
		return ts.UTC().Format(time.RFC3339)
	}
	return value.Interface()
}

// toSnakeCase converts Go field names, keeping initialisms together:
// RunAt -> run_at, CatalogID -> catalog_id, IMDbRating -> imdb_rating.
func toSnakeCase(input string) string {
	runes := []rune(input)
	var builder strings.Builder
	builder.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			nextNextUpper := i+2 < len(runes) && unicode.IsUpper(runes[i+2])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				builder.WriteRune('_')
			} else if unicode.IsUpper(prev) && nextLower && !nextNextUpper {
				builder.WriteRune('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
