package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalEnv reflects over a struct pointer and renders .env lines from
// its env tags. Nested structs are walked with their envPrefix tag.
// Empty strings are left out so defaults keep applying on reload.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("expected pointer to struct, got %T", c)
	}

	lines := marshalStruct(v.Elem(), "")
	result := strings.Join(lines, "\n")
	if result != "" {
		result += "\n"
	}
	return result, nil
}

func marshalStruct(v reflect.Value, prefix string) []string {
	var lines []string
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		val := v.Field(i)

		if val.Kind() == reflect.Struct {
			if nested, ok := field.Tag.Lookup("envPrefix"); ok {
				lines = append(lines, marshalStruct(val, prefix+nested)...)
			}
			continue
		}

		// Tag forms: "KEY", "KEY,required,notEmpty"
		key := strings.Split(field.Tag.Get("env"), ",")[0]
		if key == "" {
			continue
		}
		if val.Kind() == reflect.String && val.String() == "" {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s%s=%s", prefix, key, formatValue(val)))
	}
	return lines
}

// formatValue converts a reflect.Value to its string representation.
// Values carrying spaces or quotes are double-quoted for godotenv.
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		s := v.String()
		if strings.ContainsAny(s, " \t\"'#$") {
			return strconv.Quote(s)
		}
		return s
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
