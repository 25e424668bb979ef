package serializers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type
type Format string

const (
	// FormatText prints one line per item using its String method
	FormatText Format = "text"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTable}

var ErrUnknownFormat = errors.New("unsupported output format")

func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Writer handles serialization of command results to various formats.
type Writer struct {
	format Format
	output io.Writer
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// Serialize outputs the given data in the configured format.
func (w *Writer) Serialize(data any) error {
	switch w.format {
	case FormatText:
		return w.serializeText(data)
	case FormatJSON:
		return w.serializeJSON(data)
	case FormatYAML:
		return w.serializeYAML(data)
	case FormatTable:
		return w.serializeTable(data)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", w.format)
	}
}

// serializeText prints a slice one element per line and anything else on a
// single line, using fmt's %v (and so String methods).
func (w *Writer) serializeText(data any) error {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		for i := 0; i < val.Len(); i++ {
			if _, err := fmt.Fprintln(w.output, val.Index(i).Interface()); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w.output, data)
	return errors.WithStack(err)
}

func (w *Writer) serializeJSON(data any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "failed to serialize to JSON")
	}
	return nil
}

func (w *Writer) serializeYAML(data any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "failed to serialize to YAML")
	}
	return errors.WithStack(encoder.Close())
}

func (w *Writer) serializeTable(data any) error {
	var rows []row
	flattenValue(&rows, reflect.ValueOf(data), "")
	if len(rows) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", r.key, r.value)
	}
	return errors.WithStack(tw.Flush())
}

// row is one FIELD/VALUE line of a table. Rows keep the order in which
// fields and elements appear in the data.
type row struct {
	key   string
	value any
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func flattenValue(out *[]row, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				*out = append(*out, row{key: prefix})
			}
			return
		}
		val = val.Elem()
	}

	// Values that know how to print themselves are leaves.
	if val.Kind() == reflect.Struct && val.Type().Implements(stringerType) {
		*out = append(*out, row{key: keyOrValue(prefix), value: val.Interface()})
		return
	}

	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			flattenValue(out, val.Field(i), joinKey(prefix, field.Name))
		}
	case reflect.Map:
		// Map iteration order is random; sort the keys so output is stable.
		keys := val.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) bool {
			return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
		})
		for _, k := range keys {
			flattenValue(out, val.MapIndex(k), joinKey(prefix, fmt.Sprint(k.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			flattenValue(out, val.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))
		}
	default:
		*out = append(*out, row{key: keyOrValue(prefix), value: val.Interface()})
	}
}

func keyOrValue(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
