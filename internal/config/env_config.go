package config

import (
	"fmt"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco2cobertura/internal/util"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

var (
	settings = map[string]Setting{}
)

func init() {
	// Logging
	settings["Level"] = Setting{"LOG_LEVEL", "info", []func(interface{}, string) error{util.IsNotEmpty}}

	// Git
	settings["TargetBranch"] = Setting{"CI_MERGE_REQUEST_TARGET_BRANCH_NAME", "", nil}
	settings["SourceBranch"] = Setting{"CI_MERGE_REQUEST_SOURCE_BRANCH_NAME", "", nil}
	settings["Remote"] = Setting{"GIT_REMOTE", "origin", []func(interface{}, string) error{util.IsNotEmpty}}
	settings["Repository"] = Setting{"GIT_REPOSITORY", ".", []func(interface{}, string) error{util.IsNotEmpty}}
	settings["Extension"] = Setting{"CHANGED_FILE_EXTENSION", ".java", []func(interface{}, string) error{util.IsNotEmpty, util.IsFileExtension}}
	settings["ChangedFiles"] = Setting{"CHANGED_FILES", "", nil}

	// HTTP
	settings["HTTPRetries"] = Setting{"HTTP_RETRY_MAX", "3", []func(interface{}, string) error{util.IsNonNegativeInt}}
}

// Setting is an element in the configuration. It contains the environment
// variable from which the setting is retrieved, its default value as well as a list
// of validations which the value of this setting needs to pass.
type Setting struct {
	key          string
	defaultValue string
	validations  []func(interface{}, string) error
}

// EnvConfig is a Configuration implementation which reads the configuration from the process environment.
type EnvConfig struct {
	v *viper.Viper
}

// NewConfiguration creates a configuration instance.
func NewConfiguration() (Configuration, error) {
	config := EnvConfig{v: newViper()}

	// Check if we have all we need.
	multiError := config.verifyEnv()
	if !multiError.Empty() {
		for _, err := range multiError.Errors {
			logging.AppLogger().Error(err)
		}
		return nil, errors.New("one or more required environment variables for this configuration are missing or invalid")
	}

	return &config, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for _, setting := range settings {
		_ = v.BindEnv(setting.key)
		v.SetDefault(setting.key, setting.defaultValue)
	}
	return v
}

// Level returns the logging level.
func (c *EnvConfig) Level() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// TargetBranch returns the name of the branch a merge request targets.
func (c *EnvConfig) TargetBranch() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// SourceBranch returns the name of the branch a merge request originates from.
func (c *EnvConfig) SourceBranch() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// Remote returns the name of the git remote the branches are resolved against.
func (c *EnvConfig) Remote() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// Repository returns the path of the git repository.
func (c *EnvConfig) Repository() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// Extension returns the file extension changed files need to have.
func (c *EnvConfig) Extension() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// ChangedFiles returns an explicit comma separated list of changed files.
func (c *EnvConfig) ChangedFiles() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return c.getConfigValue(util.NameOfFunction(callPtr))
}

// HTTPRetries returns the maximum number of retries for a report download.
func (c *EnvConfig) HTTPRetries() int {
	callPtr, _, _, _ := runtime.Caller(0)
	// validated in verifyEnv
	retries, _ := strconv.Atoi(c.getConfigValue(util.NameOfFunction(callPtr)))
	return retries
}

// Set overrides the value of the named setting, eg with a value passed on the command line.
func (c *EnvConfig) Set(name string, value string) error {
	setting, ok := settings[name]
	if !ok {
		return errors.Errorf("unknown setting '%s'", name)
	}
	for _, validateFunc := range setting.validations {
		if err := validateFunc(value, setting.key); err != nil {
			return err
		}
	}
	c.v.Set(setting.key, value)
	return nil
}

// String returns a string representation of the configuration.
func (c *EnvConfig) String() string {
	var keys []string
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var values []string
	for _, key := range keys {
		values = append(values, fmt.Sprintf("%s:%s", key, c.getConfigValue(key)))
	}
	return fmt.Sprintf("map[%s]", strings.Join(values, " "))
}

// verifyEnv checks whether all needed config options are set.
func (c *EnvConfig) verifyEnv() util.MultiError {
	var errors util.MultiError
	for key, setting := range settings {
		value := c.getConfigValue(key)

		for _, validateFunc := range setting.validations {
			errors.Collect(validateFunc(value, setting.key))
		}
	}

	return errors
}

func (c *EnvConfig) getConfigValue(funcName string) string {
	setting := settings[funcName]
	return c.v.GetString(setting.key)
}
