package config

import "github.com/oddbit-project/visitordata/utils"

const (
	ErrNoKey          = utils.Error("Config key does not exist")
	ErrNotImplemented = utils.Error("Config method or type not implemented")
	ErrInvalidType    = utils.Error("Invalid destination type")
	ErrInvalidValue   = utils.Error("Invalid config value")
)

// ConfigProvider reads configuration sections into structs
// Fields tagged with `default:"..."` are filled when left at their zero value
type ConfigProvider interface {
	Get(dest any) error
	GetKey(key string, dest any) error
	GetStringKey(key string) (string, error)
	KeyExists(key string) bool
}
