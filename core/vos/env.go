package vos

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// VEnv represents a string to string mapping such as the environment or the
// variables of a script.
type VEnv interface {
	// Unsetenv unsets a single key.
	Unsetenv(key string) error

	// Setenv sets the value of the key.
	Setenv(key, value string) error

	// LookupEnv retrieves the value of the key. If the key is present the
	// value (which may be empty) is returned and the boolean is true.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the key, which will be empty if the key
	// is not present. To distinguish between an empty value and an unset
	// value, use LookupEnv.
	Getenv(key string) string

	// Environ returns a copy of the mapping in the form "key=value".
	Environ() []string
}

// CopyEnv copies all the environment variables from src to dst.
func CopyEnv(dst VEnv, src []string) error {
	for _, e := range src {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		if err := dst.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromEnvList creates an environment from "key=value" entries.
func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}
	// Ignore error, it will never be set for MapEnv.
	_ = CopyEnv(out, environ)
	return out
}

// MapEnv implements an in-memory VEnv.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ VEnv = (*MapEnv)(nil)

// Unsetenv implements VEnv.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
	return nil
}

// Setenv implements VEnv.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// LookupEnv implements VEnv.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv implements VEnv.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// Environ implements VEnv.Environ. Entries are sorted by key.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for _, k := range m.keys() {
		env = append(env, fmt.Sprintf("%s=%s", k, m.env[k]))
	}

	return env
}

// Keys returns the sorted keys of the mapping.
func (m *MapEnv) Keys() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	return m.keys()
}

func (m *MapEnv) keys() []string {
	keys := make([]string, 0, len(m.env))
	for k := range m.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
