package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyCorpusDir        = "corpus_dir"
	KeyIndexDir         = "index_dir"
	KeyWorkers          = "workers"
	KeyServeAddr        = "serve_addr"
	KeyMetadataEndpoint = "metadata_endpoint"
	KeyMetadataRegion   = "metadata_region"
	KeyMetadataTable    = "metadata_table"
	KeyDebug            = "debug"
)

var v = viper.New()

func init() {
	v.SetEnvPrefix("makamdex")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyIndexDir, "./out")
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyServeAddr, ":8080")
	v.SetDefault(KeyMetadataRegion, "localhost")
	v.SetDefault(KeyMetadataTable, "makamdex-metadata")

	// names used before the MAKAMDEX_ prefix existed
	v.BindEnv(KeyIndexDir, "MAKAMDEX_INDEX_DIR", "INDEX_PATH")
	v.BindEnv(KeyCorpusDir, "MAKAMDEX_CORPUS_DIR", "MEDIA_PATH")
}

// Load reads a .env file from the working directory when there is one.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Viper exposes the instance so commands can bind their flags.
func Viper() *viper.Viper {
	return v
}

func CorpusDir() string {
	return v.GetString(KeyCorpusDir)
}

func IndexDir() string {
	return v.GetString(KeyIndexDir)
}

func Workers() int {
	if n := v.GetInt(KeyWorkers); n > 0 {
		return n
	}
	return 1
}

func ServeAddr() string {
	return v.GetString(KeyServeAddr)
}

func MetadataEndpoint() string {
	return v.GetString(KeyMetadataEndpoint)
}

func MetadataRegion() string {
	return v.GetString(KeyMetadataRegion)
}

func MetadataTable() string {
	return v.GetString(KeyMetadataTable)
}

func Debug() bool {
	return v.GetBool(KeyDebug)
}
