package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Path returns the properties file location, honouring PROPERTIES_FILE_PATH.
func Path() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return value
	}
	return defaultPropertiesPath
}

// Init loads application properties from a YAML file and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := viper.New()
	resolveProperties("", v.AllSettings(), resolved)
	properties = resolved
	return nil
}

// resolveProperties walks the YAML tree and stores every leaf under its dotted key
func resolveProperties(prefix string, data map[string]any, target *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved, ok := resolveEnvVariable(v); ok {
				target.Set(fullKey, resolved)
			}
		case map[string]any:
			resolveProperties(fullKey, v, target)
		default:
			target.Set(fullKey, v)
		}
	}
}

// resolveEnvVariable replaces a ${NAME:default} value with the environment value or its default.
// Plain strings are returned unchanged. A placeholder with neither env value nor default is dropped.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value, true
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue, true
	}
	if len(matches) > 2 && matches[2] != "" {
		return matches[2], true
	}
	return "", false
}

// Set overrides a property, mostly useful for tests.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}

// UnmarshalKey decodes a subtree of the properties into target.
func UnmarshalKey(key string, target any) error {
	return properties.UnmarshalKey(key, target)
}
