package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domkit-dev/domkit/internal/errors"
)

const (
	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultAppPath is the default WebAssembly main package.
	DefaultAppPath = "./cmd/app"

	// DefaultCacheControl is sent with published files.
	DefaultCacheControl = "public, max-age=300"
)

// FileNames are the configuration file names searched for, in order.
var FileNames = []string{"domkit.yaml", "domkit.yml", "domkit.json"}

// Config is the complete project configuration.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Title is the document title of the generated shell.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// DefaultRoute is the page static hosts serve for unknown URLs. The
	// build writes it a second time as 404.html.
	DefaultRoute string `yaml:"defaultRoute,omitempty" json:"defaultRoute,omitempty"`

	Paths   PathsConfig   `yaml:"paths,omitempty" json:"paths,omitempty"`
	Dev     DevConfig     `yaml:"dev,omitempty" json:"dev,omitempty"`
	Build   BuildConfig   `yaml:"build,omitempty" json:"build,omitempty"`
	Publish PublishConfig `yaml:"publish,omitempty" json:"publish,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty" json:"log,omitempty"`

	configPath string
}

// PathsConfig locates project sources.
type PathsConfig struct {
	// App is the main package built for GOOS=js GOARCH=wasm.
	App string `yaml:"app,omitempty" json:"app,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	Port int    `yaml:"port,omitempty" json:"port,omitempty"`
	Host string `yaml:"host,omitempty" json:"host,omitempty"`

	// HotReload rebuilds and reloads connected browsers on change.
	HotReload *bool `yaml:"hotReload,omitempty" json:"hotReload,omitempty"`

	// Watch lists directories watched for changes.
	Watch []string `yaml:"watch,omitempty" json:"watch,omitempty"`

	// Ignore lists glob patterns excluded from watching.
	Ignore []string `yaml:"ignore,omitempty" json:"ignore,omitempty"`
}

// BuildConfig contains WebAssembly build settings.
type BuildConfig struct {
	Output  string   `yaml:"output,omitempty" json:"output,omitempty"`
	Tags    []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	LDFlags string   `yaml:"ldflags,omitempty" json:"ldflags,omitempty"`
}

// PublishConfig describes the S3 destination for built sites.
type PublishConfig struct {
	Bucket       string `yaml:"bucket,omitempty" json:"bucket,omitempty"`
	Prefix       string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Region       string `yaml:"region,omitempty" json:"region,omitempty"`
	CacheControl string `yaml:"cacheControl,omitempty" json:"cacheControl,omitempty"`
}

// LogConfig contains CLI logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the first configuration file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E100").
		WithDetail("No domkit.yaml or domkit.json found in " + dir)
}

// LoadFile reads configuration from path. The format follows the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").WithDetail(path + " does not exist")
		}
		return nil, errors.New("E101").Wrap(err).WithLocation(path, 0, 0)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, errors.New("E104").WithLocation(path, 0, 0)
	}
	if err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithLocation(path, yamlErrorLine(err), 0)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("E105").WithDetail("the configuration was not loaded from a file")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path in the format its extension names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	default:
		return errors.New("E104").WithLocation(path, 0, 0)
	}
	if err != nil {
		return errors.New("E105").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E105").Wrap(err).WithLocation(path, 0, 0)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "domkit-app"
	}
	if c.Title == "" {
		c.Title = c.Name
	}
	if c.DefaultRoute == "" {
		c.DefaultRoute = "/"
	}
	if c.Paths.App == "" {
		c.Paths.App = DefaultAppPath
	}

	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.HotReload == nil {
		on := true
		c.Dev.HotReload = &on
	}
	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = []string{"app", "cmd", "pkg"}
	}

	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}

	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the configuration for values no command can work with.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return c.located(errors.New("E102").
			WithDetail("dev.port " + strconv.Itoa(c.Dev.Port) + " is outside 1-65535"))
	}
	if !strings.HasPrefix(c.DefaultRoute, "/") {
		return c.located(errors.New("E103").
			WithDetail("defaultRoute " + strconv.Quote(c.DefaultRoute) + " does not start with \"/\""))
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) located(err *errors.DomkitError) *errors.DomkitError {
	if c.configPath != "" {
		err.WithLocation(c.configPath, 0, 0)
	}
	return err
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, c.located(errors.New("E106").Wrap(err))
	}
	return level, nil
}

// HotReloadEnabled reports whether the dev server rebuilds on change.
func (c *Config) HotReloadEnabled() bool {
	return c.Dev.HotReload == nil || *c.Dev.HotReload
}

// DevAddress returns the dev server listen address.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the dev server URL.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// OutputPath returns the absolute build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// AppPath returns the WebAssembly main package as a path relative to the
// project root, in the "./pkg" form go build expects.
func (c *Config) AppPath() string {
	p := filepath.ToSlash(c.Paths.App)
	if filepath.IsAbs(c.Paths.App) || strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") {
		return p
	}
	return "./" + p
}

// WatchPaths returns the absolute directories to watch.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Dev.Watch))
	for _, p := range c.Dev.Watch {
		paths = append(paths, c.resolve(p))
	}
	return paths
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists reports whether dir contains a configuration file.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up from startDir to the first directory holding a
// configuration file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No domkit.yaml or domkit.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the project containing the
// working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// yamlErrorLine extracts the line number from a yaml.v3 error message such
// as "yaml: line 3: mapping values are not allowed in this context".
func yamlErrorLine(err error) int {
	msg := err.Error()
	i := strings.Index(msg, "line ")
	if i < 0 {
		return 0
	}
	rest := msg[i+len("line "):]
	end := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(rest)
	}
	n, _ := strconv.Atoi(rest[:end])
	return n
}
