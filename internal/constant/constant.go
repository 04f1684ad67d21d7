package constant

import "path/filepath"

const (
	// ConfigDirName is the per-user configuration directory name
	ConfigDirName = ".botwatch"

	// ConfigFileName is the YAML configuration file name
	ConfigFileName = "config.yaml"

	// DBDirName is the subdirectory holding the SQLite database
	DBDirName = "db"

	// DBFileName is the unified SQLite database file
	DBFileName = "botwatch.db"

	// LogDirName is the subdirectory for log files
	LogDirName = "log"

	// LogFileName is the server log file
	LogFileName = "botwatch.log"
)

const (
	// DefaultPort is the default HTTP listen port
	DefaultPort = 8090

	// DefaultHost binds to all interfaces when empty
	DefaultHost = ""

	// DefaultRecentTests is how many tests the dashboard stats include
	DefaultRecentTests = 5
)

// GetConfigFile returns the config file path under baseDir.
func GetConfigFile(baseDir string) string {
	return filepath.Join(baseDir, ConfigFileName)
}

// GetDBFile returns the SQLite database path under baseDir.
func GetDBFile(baseDir string) string {
	return filepath.Join(baseDir, DBDirName, DBFileName)
}

// GetLogFile returns the log file path under baseDir.
func GetLogFile(baseDir string) string {
	return filepath.Join(baseDir, LogDirName, LogFileName)
}
