package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "citynews"

	// ConfigFileName is the name of the INI file inside the application directory
	ConfigFileName = "config.ini"

	// EnvPrefix prefixes every environment variable the application reads
	EnvPrefix = "CITYNEWS_"
)

// Version is overridden at build time with -ldflags "-X .../application.Version=..."
var Version = "0.1.0"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the citynews configuration directory path.
// Linux: ~/.config/citynews (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\citynews (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

// DefaultConfigPath returns the path of the configuration file inside the
// application directory. The file is not required to exist.
func DefaultConfigPath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
	}

	appDir = filepath.Join(baseDir, AppName)
}
