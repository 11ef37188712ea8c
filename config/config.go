package config

import (
	"flag"
	"io/fs"
	"os"
	"strconv"

	"git.thinkinpower.net/cardcheck/data"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

type Config struct {
	Port     int
	Mode     string
	DataDir  string
	Run      string
	LogLevel string
}

// Load reads the .env files (default ".env") when present, variables already
// set win, then parses args. A missing file is skipped, a malformed one is an
// error. Environment values become the flag defaults:
//
//	CARDCHECK_PORT       -p  listen port (8080)
//	CARDCHECK_MODE       -m  dev, test or release (dev)
//	CARDCHECK_DATA_DIR   -d  brand name directory (none)
//	CARDCHECK_RUN        -r  serve, prompt or selftest (serve)
//	CARDCHECK_LOG_LEVEL  -l  logrus level (info)
func Load(args []string, dotenv ...string) (Config, error) {
	if err := loadDotEnv(dotenv...); err != nil {
		return Config{}, err
	}
	return Parse(args)
}

func loadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		// godotenv.Load does not override existing env vars
		if err := godotenv.Load(filename); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "load %s", filename)
		}
	}
	return nil
}

func Parse(args []string) (Config, error) {
	var cfg Config
	port, err := strconv.Atoi(getenv("CARDCHECK_PORT", "8080"))
	if err != nil {
		return cfg, errors.Wrap(err, "CARDCHECK_PORT")
	}

	flags := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	flags.IntVar(&cfg.Port, "p", port, "-p 8080")
	flags.StringVar(&cfg.Mode, "m", getenv("CARDCHECK_MODE", data.RunModeDev), "-m [dev|test|release]")
	flags.StringVar(&cfg.DataDir, "d", getenv("CARDCHECK_DATA_DIR", ""), "-d /home/testuser/branddata")
	flags.StringVar(&cfg.Run, "r", getenv("CARDCHECK_RUN", data.RunServe), "-r [serve|prompt|selftest]")
	flags.StringVar(&cfg.LogLevel, "l", getenv("CARDCHECK_LOG_LEVEL", "info"), "-l [debug|info|warn|error]")
	if err = flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	switch c.Mode {
	case data.RunModeDev, data.RunModeTest, data.RunModeRelease:
	default:
		return errors.Errorf("invalid mode %q", c.Mode)
	}
	switch c.Run {
	case data.RunServe, data.RunPrompt, data.RunSelfTest:
	default:
		return errors.Errorf("invalid run target %q", c.Run)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	return nil
}

// Level is only meaningful after Validate succeeded.
func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.InfoLevel
	}
	return level
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
