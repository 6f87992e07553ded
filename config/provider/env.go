package provider

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/gobeam/stringy"
	"github.com/oddbit-project/visitordata/config"
)

var _ config.ConfigProvider = (*EnvProvider)(nil)

type EnvProvider struct {
	prefix      string
	configData  map[string]string
	convertCase bool // if true, key lookups are converted from localDef -> LOCAL_DEF
}

// NewEnvProvider builds a config.ConfigProvider from environment variables starting with prefix.
// Lookups are prefixed too: with prefix "APP", GetStringKey("region") reads APP_REGION when convertCamelCase is enabled.
func NewEnvProvider(prefix string, convertCamelCase bool) *EnvProvider {
	provider := &EnvProvider{
		prefix:      strings.TrimSuffix(prefix, "_"),
		configData:  make(map[string]string),
		convertCase: convertCamelCase,
	}
	provider.load()
	return provider
}

func (e *EnvProvider) load() {
	for _, env := range os.Environ() {
		toks := strings.SplitN(env, "=", 2)
		if len(toks) == 2 && strings.HasPrefix(toks[0], e.prefix+"_") {
			e.configData[toks[0]] = toks[1]
		}
	}
}

func (e *EnvProvider) convertKey(key string) string {
	if e.convertCase {
		return stringy.New(key).SnakeCase("?", "").ToUpper()
	}
	return key
}

func (e *EnvProvider) envKey(key string) string {
	return e.prefix + "_" + e.convertKey(key)
}

// Get reads fields of dest directly under the prefix
func (e *EnvProvider) Get(dest any) error {
	return e.readPrefixedStruct(e.prefix, dest)
}

// GetKey reads the struct dest from PREFIX_KEY_FIELD variables.
// The field name is taken from the `env` tag as-is, or converted from the field name.
// Only variables that exist overwrite a field, so GetKey can be layered over another provider.
// A variable that cannot be parsed into its field returns config.ErrInvalidValue.
func (e *EnvProvider) GetKey(key string, dest any) error {
	return e.readPrefixedStruct(e.envKey(key), dest)
}

func (e *EnvProvider) readPrefixedStruct(prefix string, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return config.ErrInvalidType
	}
	v = v.Elem()
	prefix = strings.ToUpper(prefix)
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		fieldValue := v.Field(i)
		if !fieldValue.CanSet() {
			continue
		}
		name := field.Tag.Get("env")
		if name == "" {
			name = e.convertKey(field.Name)
		}
		key := prefix + "_" + name
		if val, ok := e.configData[key]; ok {
			if err := setValue(fieldValue, val); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

func (e *EnvProvider) GetStringKey(key string) (string, error) {
	v, ok := e.configData[e.envKey(key)]
	if !ok {
		return "", config.ErrNoKey
	}
	return v, nil
}

func (e *EnvProvider) KeyExists(key string) bool {
	_, exists := e.configData[e.envKey(key)]
	return exists
}
