package testutils

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStructFieldInfo(t *testing.T) {
	type sample struct {
		Name     string `json:"name,omitempty"`
		Count    int
		Tags     []string `json:"tags"`
		Ignored  string   `json:"-"`
		internal string
	}
	info := getStructFieldInfo(&sample{internal: "x"})
	assert.Equal(t, "sample", info.Name)
	assert.Equal(t, map[string]reflect.Kind{
		"name":  reflect.String,
		"Count": reflect.Int,
		"tags":  reflect.Slice,
	}, info.FieldTypeMap)

	assert.Empty(t, getStructFieldInfo("not a struct").FieldTypeMap)
}

func TestValidateJsonContract(t *testing.T) {
	type a struct {
		Password string `json:"password"`
	}
	type b struct {
		Password string `json:"password"`
	}
	ValidateJsonContract(t, a{}, &b{})

	type c struct {
		Password int `json:"password"`
	}
	assert.NotEqual(t, getStructFieldInfo(a{}).FieldTypeMap, getStructFieldInfo(c{}).FieldTypeMap)
}
