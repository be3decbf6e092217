// Package constants contains names for common directories and files used by signpost.
package constants

const (
	// ProjectDir is the signpost configuration directory inside a project (.signpost).
	ProjectDir = ".signpost"

	// RulesSubDir is the rule document directory within the project directory.
	RulesSubDir = "rules"

	// ConfigFilename is the optional app config file within the project directory.
	ConfigFilename = "config.yml"

	// LogFilename is the default log file name for signpost.
	LogFilename = "signpost.log"

	// StateFilename is the acknowledgment state database file name.
	StateFilename = "state.db"

	// DocExtension is the file extension recognized as a rule document.
	DocExtension = ".md"
)
