package main

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"

	maxCellWidth = 40
)

// render writes v, a record or a slice of records, in format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		// Round trip through JSON so YAML keys match the API field names.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderTable(w, v)
	}
}

// renderTable prints structs one per row with their JSON field names as
// the header.
func renderTable(w io.Writer, v any) error {
	rv := reflect.ValueOf(v)
	var rows []reflect.Value
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			rows = append(rows, reflect.Indirect(rv.Index(i)))
		}
	default:
		rows = append(rows, reflect.Indirect(rv))
	}

	typ := rv.Type()
	if typ.Kind() == reflect.Slice || typ.Kind() == reflect.Array {
		typ = typ.Elem()
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		_, err := fmt.Fprintln(w, v)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	var header []string
	for i := 0; i < typ.NumField(); i++ {
		header = append(header, strings.ToUpper(columnName(typ.Field(i))))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		cells := make([]string, row.NumField())
		for i := range cells {
			cells[i] = cell(row.Field(i))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func columnName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func cell(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}
	s := strings.ReplaceAll(fmt.Sprint(v.Interface()), "\t", " ")
	if r := []rune(s); len(r) > maxCellWidth {
		s = string(r[:maxCellWidth-3]) + "..."
	}
	return s
}
