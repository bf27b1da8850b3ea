package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigDataPath       = "data-path"
	ConfigWordsFile      = "words-file"
	ConfigScoresFile     = "scores-file"
	ConfigReelsFile      = "reels-file"
	ConfigWordSize       = "word-size"
	ConfigShufflePenalty = "shuffle-penalty"
	ConfigLanguage       = "language"
	ConfigStore          = "store"
	ConfigSavedGamesPath = "saved-games-path"
	ConfigSaveFormat     = "save-format"
	ConfigSqlitePath     = "sqlite-path"
	ConfigSaveRetries    = "save-retries"
	ConfigHistoryFile    = "history-file"
)

const (
	DefaultWordSize       = 7
	DefaultShufflePenalty = 2
	DefaultSaveRetries    = 3
)

const (
	StoreFile   = "file"
	StoreSqlite = "sqlite"
)

// Config wraps a viper instance. Values come, in increasing order of
// precedence, from defaults, a reelwords.yaml file, REELWORDS_* environment
// variables and --key=value arguments.
type Config struct {
	viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigWordsFile, "words.txt")
	c.SetDefault(ConfigScoresFile, "scores.txt")
	c.SetDefault(ConfigReelsFile, "reels.txt")
	c.SetDefault(ConfigWordSize, DefaultWordSize)
	c.SetDefault(ConfigShufflePenalty, DefaultShufflePenalty)
	c.SetDefault(ConfigLanguage, "en")
	c.SetDefault(ConfigStore, StoreFile)
	c.SetDefault(ConfigSavedGamesPath, "./saved_games")
	c.SetDefault(ConfigSaveFormat, "json")
	c.SetDefault(ConfigSqlitePath, "./saved_games/reelwords.db")
	c.SetDefault(ConfigSaveRetries, DefaultSaveRetries)
	c.SetDefault(ConfigHistoryFile, "/tmp/reelwords_readline.tmp")
}

// Load reads the configuration. args are of the form --key=value or
// --key value; a bare --key sets a boolean to true.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()

	c.SetConfigName("reelwords")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		c.AddConfigPath(filepath.Join(home, ".reelwords"))
	}
	if err := c.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return err
		}
	}

	c.SetEnvPrefix("reelwords")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	return c.parseArgs(args)
}

func (c *Config) parseArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return errors.New("unexpected argument: " + arg)
		}
		arg = strings.TrimPrefix(arg, "--")
		if k, v, ok := strings.Cut(arg, "="); ok {
			c.Set(k, v)
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			c.Set(arg, args[i+1])
			i++
			continue
		}
		c.Set(arg, true)
	}
	return nil
}

// intOr parses the key as an int, falling back to def when it is missing,
// unparsable or below min.
func (c *Config) intOr(key string, def, min int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.GetString(key)))
	if err != nil || v < min {
		log.Debug().Str("key", key).Str("value", c.GetString(key)).Int("default", def).
			Msg("using default for config value")
		return def
	}
	return v
}

// WordSize is the number of columns of a reel panel and the maximum length
// of a dictionary word.
func (c *Config) WordSize() int {
	return c.intOr(ConfigWordSize, DefaultWordSize, 1)
}

func (c *Config) ShufflePenalty() int {
	return c.intOr(ConfigShufflePenalty, DefaultShufflePenalty, 0)
}

func (c *Config) SaveRetries() int {
	return c.intOr(ConfigSaveRetries, DefaultSaveRetries, 1)
}

// dataFile resolves a data file name against data-path. Absolute names are
// used as they are.
func (c *Config) dataFile(key string) string {
	name := c.GetString(key)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.GetString(ConfigDataPath), name)
}

func (c *Config) WordsPath() string  { return c.dataFile(ConfigWordsFile) }
func (c *Config) ScoresPath() string { return c.dataFile(ConfigScoresFile) }
func (c *Config) ReelsPath() string  { return c.dataFile(ConfigReelsFile) }

// AdjustRelativePaths makes relative data paths relative to basePath, the
// directory of the executable, unless they already exist relative to the
// working directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigDataPath, ConfigSavedGamesPath, ConfigSqlitePath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
