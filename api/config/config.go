/* config.go
 * Contains the runtime configuration. Settings come from the environment (after godotenv has loaded any .env file)
 * and an optional pool YAML file holding the scoring weights and the name aliases used when importing picks
 * Authors: Zachary Bower
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"playoff-pool/api/bracket"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v2"
)

const (
	defaultDataDir    = "data"
	defaultMongoDB    = "PlayoffPool"
	defaultHTTPAddr   = ":8080"
	defaultNhlBaseURL = "https://api-web.nhle.com"
	defaultNhlRPS     = 5
)

// Config is everything the binaries need to run
type Config struct {
	Year       int
	DataDir    string
	ConfigFile string
	MongoURI   string
	MongoDB    string
	ProdToken  string
	BetaToken  string
	HTTPAddr   string
	NhlBaseURL string
	NhlRPS     rate.Limit
	Pool       Pool
}

// Pool is the part of the configuration that describes the pool itself rather than where things run
type Pool struct {
	Scoring     bracket.ScoringTable `yaml:"scoring"`
	TeamAliases map[string]string    `yaml:"team_aliases"`
	NameAliases map[string]string    `yaml:"name_aliases"`
}

// DefaultPool is used when no pool file is configured
func DefaultPool() Pool {
	return Pool{
		Scoring: append(bracket.ScoringTable(nil), bracket.DefaultScoring...),
		// spellings used on the pick forms over the years that don't match the bracket source
		TeamAliases: map[string]string{
			"BUFF":               "BUF",
			"CAL":                "CGY",
			"CLB":                "CBJ",
			"LA":                 "LAK",
			"LV":                 "VGK",
			"MON":                "MTL",
			"Montreal Canadiens": "Montréal Canadiens",
			"NAS":                "NSH",
			"NASH":               "NSH",
			"NJ":                 "NJD",
			"PHE":                "PHX",
			"PHO":                "PHX",
			"PITT":               "PIT",
			"SJ":                 "SJS",
			"St Louis Blues":     "St. Louis Blues",
			"TB":                 "TBL",
			"WAS":                "WSH",
			"WASH":               "WSH",
		},
		// keys are lower case
		NameAliases: map[string]string{
			"dad":    "Derrick",
			"mom":    "Chrissy",
			"chris":  "Chrissy",
			"m.c.b.": "Marc",
		},
	}
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return LoadFromEnv(os.Getenv)
}

// LoadFromEnv builds the configuration from getenv. The pool file, if named, is read from disk
// Preconditions: Receives a lookup function for environment variables
// Postconditions: Returns the Config with defaults applied, or an error naming the bad variable
func LoadFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DataDir:    getenv("POOL_DATA_DIR"),
		ConfigFile: getenv("POOL_CONFIG_FILE"),
		MongoURI:   getenv("MONGO_URI"),
		MongoDB:    getenv("MONGO_DB"),
		ProdToken:  getenv("DISCORD_PROD_TOKEN"),
		BetaToken:  getenv("DISCORD_BETA_TOKEN"),
		HTTPAddr:   getenv("HTTP_ADDR"),
		NhlBaseURL: getenv("NHL_API_BASE_URL"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = defaultMongoDB
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.NhlBaseURL == "" {
		cfg.NhlBaseURL = defaultNhlBaseURL
	}

	yearRaw := getenv("POOL_YEAR")
	if yearRaw == "" {
		cfg.Year = time.Now().Year()
	} else {
		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			return Config{}, fmt.Errorf("POOL_YEAR: %w", err)
		}
		if year < 1900 {
			return Config{}, errors.New("POOL_YEAR: must be a four digit year")
		}
		cfg.Year = year
	}

	rpsRaw := getenv("NHL_API_RPS")
	if rpsRaw == "" {
		cfg.NhlRPS = defaultNhlRPS
	} else {
		rps, err := strconv.ParseFloat(rpsRaw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("NHL_API_RPS: %w", err)
		}
		if rps <= 0 {
			return Config{}, errors.New("NHL_API_RPS: must be > 0")
		}
		cfg.NhlRPS = rate.Limit(rps)
	}

	cfg.Pool = DefaultPool()
	if cfg.ConfigFile != "" {
		raw, err := os.ReadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("POOL_CONFIG_FILE: %w", err)
		}
		pool, err := ParsePool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("POOL_CONFIG_FILE %s: %w", cfg.ConfigFile, err)
		}
		cfg.Pool = pool
	}

	return cfg, nil
}

// ParsePool decodes a pool YAML document. Sections that are left out keep their defaults
func ParsePool(raw []byte) (Pool, error) {
	var fromFile Pool
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return Pool{}, err
	}

	pool := DefaultPool()
	if len(fromFile.Scoring) > 0 {
		if err := fromFile.Scoring.Validate(); err != nil {
			return Pool{}, err
		}
		pool.Scoring = fromFile.Scoring
	}
	for k, v := range fromFile.TeamAliases {
		pool.TeamAliases[k] = v
	}
	// names are matched case-insensitively, so keys are stored lower case
	for k, v := range fromFile.NameAliases {
		pool.NameAliases[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return pool, nil
}

// DiscordToken picks the token for the requested environment
func (c Config) DiscordToken(prod bool) (string, error) {
	token, name := c.BetaToken, "DISCORD_BETA_TOKEN"
	if prod {
		token, name = c.ProdToken, "DISCORD_PROD_TOKEN"
	}
	if token == "" {
		return "", fmt.Errorf("%s: required to run the bot", name)
	}
	return token, nil
}
