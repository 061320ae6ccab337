package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var errUnsupportedField = errors.New("unsupported field type")

// bindToStruct binds a url.Values-like map into the struct v points to.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	return bindFields(v, tagName, bindErr, func(name string) []string {
		return values[name]
	})
}

// bindFields sets every exported field of *v for which lookup returns values.
// Fields are matched by their tagName tag, or by lowercased name when untagged;
// a "-" tag skips the field. Fields without values keep what they hold.
func bindFields(v any, tagName string, bindErr error, lookup func(name string) []string) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() || target.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", bindErr)
	}
	target = target.Elem()

	typ := target.Type()
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name := fieldName(sf, tagName)
		if name == "" {
			continue
		}
		values := lookup(name)
		if len(values) == 0 {
			continue
		}
		if err := assign(target.Field(i), values); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}
	return nil
}

func fieldName(sf reflect.StructField, tagName string) string {
	tag, ok := sf.Tag.Lookup(tagName)
	switch {
	case !ok || tag == "":
		return strings.ToLower(sf.Name)
	case tag == "-":
		return ""
	default:
		name, _, _ := strings.Cut(tag, ",")
		return name
	}
}

// assign stores values into field: all of them for slices, the first otherwise.
func assign(field reflect.Value, values []string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), values)
	case reflect.Slice:
		out := reflect.MakeSlice(field.Type(), len(values), len(values))
		for i, s := range values {
			if err := parseScalar(out.Index(i), strings.TrimSpace(s)); err != nil {
				return err
			}
		}
		field.Set(out)
		return nil
	default:
		return parseScalar(field, values[0])
	}
}

func parseScalar(dst reflect.Value, s string) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		dst.SetUint(n)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedField, dst.Kind())
	}
	return nil
}

// parseBool also accepts the values HTML checkboxes and toggles send.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return b, nil
}
