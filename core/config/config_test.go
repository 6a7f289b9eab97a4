package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefault(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.EventLogPath())
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		update  func(*Configuration)
		wantErr string
	}{
		"default": {
			update: func(*Configuration) {},
		},
		"bad color": {
			update:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: "Field validation for 'color' failed on the 'oneof' tag",
		},
		"empty path entry": {
			update:  func(c *Configuration) { c.Path = []string{"/bin", ""} },
			wantErr: "Field validation for 'path[1]' failed on the 'required' tag",
		},
		"empty environment key": {
			update:  func(c *Configuration) { c.Environment = map[string]string{"": "x"} },
			wantErr: "failed on the 'required' tag",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default()
			tc.update(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tc.wantErr)
				}
			}
		})
	}
}
