package provider

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/oddbit-project/visitordata/config"
)

// applyDefaults fills zero-valued struct fields from their `default` tag, recursing into nested structs
func applyDefaults(dest any) {
	v := reflect.ValueOf(dest)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		fieldValue := v.Field(i)
		if !fieldValue.CanSet() {
			continue
		}

		if defaultVal := field.Tag.Get("default"); defaultVal != "" && fieldValue.IsZero() {
			// malformed default tags leave the zero value in place
			_ = setValue(fieldValue, defaultVal)
		}

		if fieldValue.Kind() == reflect.Struct {
			applyDefaults(fieldValue.Addr().Interface())
		}
	}
}

// setValue parses raw into a string, int, bool or float64 field
func setValue(fieldValue reflect.Value, raw string) error {
	var err error
	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(raw)
	case reflect.Int:
		var intVal int
		if intVal, err = strconv.Atoi(raw); err == nil {
			fieldValue.SetInt(int64(intVal))
		}
	case reflect.Bool:
		var boolVal bool
		if boolVal, err = strconv.ParseBool(raw); err == nil {
			fieldValue.SetBool(boolVal)
		}
	case reflect.Float64:
		var floatVal float64
		if floatVal, err = strconv.ParseFloat(raw, 64); err == nil {
			fieldValue.SetFloat(floatVal)
		}
	}
	if err != nil {
		return fmt.Errorf("%w %q: %v", config.ErrInvalidValue, raw, err)
	}
	return nil
}
