package provider

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/oddbit-project/visitordata/config"
	"github.com/oddbit-project/visitordata/utils"
)

const (
	ErrJsonInvalidSource = utils.Error("NewJsonProvider: Invalid source type")
)

type JsonProvider struct {
	configData map[string]json.RawMessage
	m          sync.RWMutex
}

// NewJsonProvider creates a provider from a json.RawMessage, []byte, io.Reader or a file name
func NewJsonProvider(src any) (config.ConfigProvider, error) {
	provider := &JsonProvider{
		configData: make(map[string]json.RawMessage),
	}
	var err error
	switch v := src.(type) {
	case json.RawMessage:
		err = json.Unmarshal(v, &provider.configData)
	case []byte:
		err = json.Unmarshal(v, &provider.configData)
	case io.Reader:
		err = provider.fromReader(v)
	case string:
		err = provider.fromFile(v)
	default:
		return nil, ErrJsonInvalidSource
	}
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func (j *JsonProvider) fromReader(src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &j.configData)
}

func (j *JsonProvider) fromFile(fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return j.fromReader(f)
}

// Get de-serializes everything to dest
func (j *JsonProvider) Get(dest any) error {
	j.m.RLock()
	defer j.m.RUnlock()
	data, err := json.Marshal(j.configData)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, dest); err != nil {
		return err
	}
	applyDefaults(dest)
	return nil
}

// GetKey de-serializes a top-level section to dest
func (j *JsonProvider) GetKey(key string, dest any) error {
	j.m.RLock()
	defer j.m.RUnlock()
	v, ok := j.configData[key]
	if !ok {
		return config.ErrNoKey
	}
	if err := json.Unmarshal(v, dest); err != nil {
		return err
	}
	applyDefaults(dest)
	return nil
}

func (j *JsonProvider) GetStringKey(key string) (string, error) {
	j.m.RLock()
	defer j.m.RUnlock()
	var result string
	v, ok := j.configData[key]
	if !ok {
		return "", config.ErrNoKey
	}
	if err := json.Unmarshal(v, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (j *JsonProvider) KeyExists(key string) bool {
	j.m.RLock()
	defer j.m.RUnlock()
	_, ok := j.configData[key]
	return ok
}
