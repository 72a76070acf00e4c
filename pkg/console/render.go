package console

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ossa-dev/ossa/pkg/logger"
)

var renderLog = logger.New("console:render")

// RenderStruct renders a Go struct for console output using reflection and
// `console:` struct tags:
//
//   - `console:"title:My Title"`    - section title for nested structs/slices
//   - `console:"header:Column"`     - field label / table column header
//   - `console:"format:cost"`       - format float values as $0.000
//   - `console:"omitempty"`         - skip zero values
//   - `console:"-"`                 - skip the field entirely
//
// Structs render as aligned key-value blocks, slices of structs render as
// tables, and other slices render as bullet lists.
func RenderStruct(v any) string {
	renderLog.Printf("rendering struct: type=%T", v)
	var out strings.Builder
	renderValue(reflect.ValueOf(v), "", &out, 0)
	return out.String()
}

func renderValue(val reflect.Value, title string, out *strings.Builder, depth int) {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		renderStructValue(val, title, out, depth)
	case reflect.Slice, reflect.Array:
		renderSliceValue(val, title, out, depth)
	case reflect.Map:
		renderMapValue(val, title, out, depth)
	}
}

func writeTitle(out *strings.Builder, title string, depth int) {
	if title == "" {
		return
	}
	fmt.Fprintf(out, "%s %s\n\n", strings.Repeat("#", depth+1), title)
}

func renderStructValue(val reflect.Value, title string, out *strings.Builder, depth int) {
	typ := val.Type()
	writeTitle(out, title, depth)

	maxLen := 0
	for i := range val.NumField() {
		tag := parseConsoleTag(typ.Field(i).Tag.Get("console"))
		if tag.skip || (tag.omitempty && val.Field(i).IsZero()) {
			continue
		}
		if n := len(fieldLabel(typ.Field(i), tag)); n > maxLen {
			maxLen = n
		}
	}

	for i := range val.NumField() {
		field := val.Field(i)
		tag := parseConsoleTag(typ.Field(i).Tag.Get("console"))
		if tag.skip || (tag.omitempty && field.IsZero()) {
			continue
		}
		label := fieldLabel(typ.Field(i), tag)

		deref := field
		if deref.Kind() == reflect.Ptr && !deref.IsNil() {
			deref = deref.Elem()
		}

		switch deref.Kind() {
		case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
			subTitle := tag.title
			if subTitle == "" {
				subTitle = label
			}
			renderValue(field, subTitle, out, depth+1)
		default:
			fmt.Fprintf(out, "  %-*s: %s\n", maxLen, label, formatFieldValue(field, tag))
		}
	}
	out.WriteString("\n")
}

func renderSliceValue(val reflect.Value, title string, out *strings.Builder, depth int) {
	if val.Len() == 0 {
		return
	}
	writeTitle(out, title, depth)

	elemType := val.Type().Elem()
	for elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}

	if elemType.Kind() == reflect.Struct {
		out.WriteString(RenderTable(sliceTableConfig(val, elemType)))
	} else {
		for i := range val.Len() {
			fmt.Fprintf(out, "  • %s\n", formatFieldValue(val.Index(i), consoleTag{}))
		}
	}
	out.WriteString("\n")
}

func renderMapValue(val reflect.Value, title string, out *strings.Builder, depth int) {
	if val.Len() == 0 {
		return
	}
	writeTitle(out, title, depth)
	for _, key := range val.MapKeys() {
		fmt.Fprintf(out, "  %-18s %s\n", fmt.Sprintf("%v:", key), formatFieldValue(val.MapIndex(key), consoleTag{}))
	}
	out.WriteString("\n")
}

func sliceTableConfig(val reflect.Value, elemType reflect.Type) TableConfig {
	var config TableConfig
	var indices []int
	var tags []consoleTag

	for i := range elemType.NumField() {
		tag := parseConsoleTag(elemType.Field(i).Tag.Get("console"))
		if tag.skip {
			continue
		}
		config.Headers = append(config.Headers, fieldLabel(elemType.Field(i), tag))
		indices = append(indices, i)
		tags = append(tags, tag)
	}

	for i := range val.Len() {
		elem := val.Index(i)
		for elem.Kind() == reflect.Ptr && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			continue
		}
		row := make([]string, 0, len(indices))
		for j, idx := range indices {
			row = append(row, formatFieldValue(elem.Field(idx), tags[j]))
		}
		config.Rows = append(config.Rows, row)
	}

	return config
}

type consoleTag struct {
	title     string
	header    string
	format    string
	omitempty bool
	skip      bool
}

func parseConsoleTag(tag string) consoleTag {
	var result consoleTag
	if tag == "-" {
		result.skip = true
		return result
	}
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "omitempty":
			result.omitempty = true
		default:
			if after, ok := strings.CutPrefix(part, "title:"); ok {
				result.title = after
			} else if after, ok := strings.CutPrefix(part, "header:"); ok {
				result.header = after
			} else if after, ok := strings.CutPrefix(part, "format:"); ok {
				result.format = after
			}
		}
	}
	return result
}

func fieldLabel(field reflect.StructField, tag consoleTag) string {
	if tag.header != "" {
		return tag.header
	}
	return field.Name
}

func formatFieldValue(val reflect.Value, tag consoleTag) string {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "-"
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		return "-"
	}
	if val.Kind() == reflect.String && val.Len() == 0 {
		return "-"
	}
	if tag.format == "cost" && (val.Kind() == reflect.Float64 || val.Kind() == reflect.Float32) {
		return fmt.Sprintf("$%.3f", val.Float())
	}
	if val.CanInterface() {
		return fmt.Sprintf("%v", val.Interface())
	}
	return val.Type().String()
}
