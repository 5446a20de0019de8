package config

// Configuration declares the configuration properties of this app.
type Configuration interface {
	LogConfig
	GitConfig
	HTTPConfig

	// Set overrides the named setting, eg with a value given on the command line.
	Set(name string, value string) error

	// String returns a string representation of the configuration.
	String() string
}

// GitConfig defines how the list of changed files is determined.
type GitConfig interface {
	// TargetBranch returns the name of the branch a merge request targets.
	TargetBranch() string

	// SourceBranch returns the name of the branch a merge request originates from.
	SourceBranch() string

	// Remote returns the name of the git remote the branches are resolved against.
	Remote() string

	// Repository returns the path of the git repository (or any directory within it).
	Repository() string

	// Extension returns the file extension changed files need to have, eg '.java'.
	Extension() string

	// ChangedFiles returns an explicit comma separated list of changed files. If set, git is not consulted.
	ChangedFiles() string
}

// HTTPConfig defines the configuration used when a report is retrieved via HTTP.
type HTTPConfig interface {
	// HTTPRetries returns the maximum number of retries for a report download.
	HTTPRetries() int
}

// LogConfig defines the logging configuration.
type LogConfig interface {
	// Level returns the logging level.
	Level() string
}
