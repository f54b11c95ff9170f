// Package render produces the indented debug dumps of containers used in
// logs and test failure messages.
//
//	render.CollectionToText(collections.Slice[int]{1, 2})
//	//     - 1
//	//     - 2
//
//	render.MapToText(collections.StdMap[any]{"port": 8080})
//	//     - port ==> [int 8080]
package render

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/hasbyte1/go-collection-strategies/collections"
)

const indent = "    "

var (
	collectionTmpl = template.Must(template.New("collection").Parse(
		`{{range $i, $e := .}}{{if $i}}{{"\n"}}{{end}}` + indent + `- {{$e}}{{end}}`))

	mapTmpl = template.Must(template.New("map").Parse(
		`{{range $i, $r := .}}{{if $i}}{{"\n"}}{{end}}` + indent + `- {{$r.Key}} ==> [{{$r.Type}} {{$r.Value}}]{{end}}`))
)

type mapRow struct {
	Key   string
	Type  string
	Value string
}

// CollectionToText renders one "    - <element>" line per element of src in
// iteration order. A nil or empty src renders as "".
func CollectionToText[T any](src collections.Source[T]) string {
	var items []string
	if src != nil {
		src.Each(func(v T) { items = append(items, fmt.Sprint(v)) })
	}
	return execute(collectionTmpl, items)
}

// MapToText renders one "    - <key> ==> [<type> <value>]" line per entry of
// src in iteration order. Entries with a nil value are skipped. A value whose
// text spans several lines starts on a new indented line.
func MapToText[V any](src collections.MapSource[V]) string {
	var rows []mapRow
	if src != nil {
		src.Each(func(k string, v V) {
			if isNil(v) {
				return
			}
			text := fmt.Sprint(v)
			if strings.Contains(text, "\n") {
				text = "\n" + indent + text
			}
			rows = append(rows, mapRow{Key: k, Type: TypeName(v), Value: text})
		})
	}
	return execute(mapTmpl, rows)
}

var qualifier = regexp.MustCompile(`[\w./-]+\.`)

// TypeName returns the dynamic type of v without package qualifiers, as in
// "Duration", "*Config" or "map[string]Entry". It returns "nil" for nil.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return qualifier.ReplaceAllString(reflect.TypeOf(v).String(), "")
}

func execute(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(errors.Wrapf(err, "render: executing %s template", t.Name()))
	}
	return b.String()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
