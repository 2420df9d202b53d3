package util

import (
	"reflect"

	"github.com/pkg/errors"
)

var ErrNotInitialized = errors.New("struct is not fully initialized")

// IsStructInitialized checks that every exported field of the struct pointed to by s is set.
// Fields tagged `wire:"-"` are skipped.
func IsStructInitialized(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.Wrap(ErrNotInitialized, "struct is nil")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := range v.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}

		if v.Field(i).IsZero() {
			return errors.Wrapf(ErrNotInitialized, "field %s", field.Name)
		}
	}

	return nil
}
