package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Environment variables read by [LoadConfig].
const (
	EnvModsDir   = "MODGRAPH_MODS_DIR"
	EnvOutput    = "MODGRAPH_OUTPUT"
	EnvReduction = "MODGRAPH_REDUCTION"
	EnvNoCache   = "MODGRAPH_NO_CACHE"
)

// Config holds settings taken from the environment. Command-line flags
// default to these values, so a flag given explicitly always wins.
type Config struct {
	ModsDir   string
	Output    string
	Reduction string
	NoCache   bool
}

// LoadConfig reads envFile, if it exists, into the process environment and
// then resolves the modgraph variables. Variables already set in the
// environment take precedence over the file.
//
// A missing envFile is not an error. If the file exists but cannot be
// read or parsed, the returned Config is still resolved from the
// environment and the error is returned alongside it.
func LoadConfig(envFile string) (Config, error) {
	var loadErr error
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		loadErr = fmt.Errorf("load %s: %w", envFile, err)
	}

	return Config{
		ModsDir:   firstNonEmpty(os.Getenv(EnvModsDir), pipeline.DefaultModsDir),
		Output:    firstNonEmpty(os.Getenv(EnvOutput), pipeline.DefaultOutput),
		Reduction: firstNonEmpty(os.Getenv(EnvReduction), string(pipeline.DefaultMode)),
		NoCache:   parseBool(os.Getenv(EnvNoCache)),
	}, loadErr
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
