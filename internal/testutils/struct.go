package testutils

import (
	"reflect"
	"strings"
	"testing"
)

type structInfo struct {
	Name         string
	FieldTypeMap map[string]reflect.Kind
}

// getStructFieldInfo maps the json names of the exported fields of
// `v` to their kinds
func getStructFieldInfo(v any) structInfo {
	result := structInfo{FieldTypeMap: map[string]reflect.Kind{}}

	typ := reflect.TypeOf(v)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return result
	}
	result.Name = typ.Name()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name := field.Name
		if jsonTag, ok := field.Tag.Lookup("json"); ok {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		result.FieldTypeMap[name] = field.Type.Kind()
	}

	return result
}

// ValidateJsonContract fails `t` when the json fields of `i` and `j`
// differ in name or kind, use it to keep client and server payloads
// aligned
func ValidateJsonContract(t *testing.T, i any, j any) {
	t.Helper()
	structA := getStructFieldInfo(i)
	structB := getStructFieldInfo(j)
	compareFields(t, structA, structB)
	compareFields(t, structB, structA)
}

func compareFields(t *testing.T, structA, structB structInfo) {
	t.Helper()
	for structAField, structAType := range structA.FieldTypeMap {
		structBType, ok := structB.FieldTypeMap[structAField]
		if !ok {
			t.Errorf(
				"%s[%s] doesn't exist in %s",
				structA.Name,
				structAField,
				structB.Name,
			)
			continue
		}
		if structAType != structBType {
			t.Errorf(
				"%s[%s]'s type[%s] doesn't match %s[%s]'s type[%s]",
				structA.Name,
				structAField,
				structAType,
				structB.Name,
				structAField,
				structBType,
			)
		}
	}
}
