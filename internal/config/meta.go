package config

import (
	"reflect"
	"strings"
)

// SettingInfo documents one config key for `galho config keys`
type SettingInfo struct {
	Default any    `json:"default" yaml:"default"`
	Env     string `json:"env" yaml:"env"`
	Key     string `json:"key" yaml:"key"`
	Rule    string `json:"rule,omitempty" yaml:"rule,omitempty"` // Validation rule, empty when unconstrained
}

// Describe uses reflection on Settings so new fields are listed without
// extra bookkeeping
func Describe() []SettingInfo {
	defaults := Defaults()
	t := reflect.TypeOf(Settings{})

	infos := make([]SettingInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := strings.Split(field.Tag.Get("koanf"), ",")[0]
		if key == "" {
			continue
		}
		infos = append(infos, SettingInfo{
			Default: defaults[key],
			Env:     EnvPrefix + strings.ToUpper(key),
			Key:     key,
			Rule:    field.Tag.Get("validate"),
		})
	}
	return infos
}
