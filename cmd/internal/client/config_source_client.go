package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-getter"
	"go.uber.org/zap"
)

// configExtensions are the file extensions viper can read. A source ending in one of these is fetched as a
// single file, anything else is fetched as a directory.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml", ".hcl", ".env", ".properties"}

// ConfigSource fetches the organization configuration from a remote location.
type ConfigSource interface {
	// Fetch downloads the source and returns the local directory holding the configuration file.
	Fetch(ctx context.Context, source string, configFile string) (string, error)
}

// ConfigSourceClient fetches configuration with go-getter, so any source go-getter understands can be used,
// e.g. git::https://github.com/acme/platform//landingzone?ref=v1.0.0 or https://example.org/lzterra.yaml
type ConfigSourceClient struct {
	// Attempts is the number of times a download is tried. Defaults to 3.
	Attempts uint
	// Delay is the initial delay between attempts. Defaults to 1 second.
	Delay time.Duration
}

func (c ConfigSourceClient) Fetch(ctx context.Context, source string, configFile string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", errors.New("the configuration source can not be empty")
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(os.TempDir(), "lzterra-"+uuid.New().String())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	dst, mode := c.destination(dir, source, configFile)

	zap.L().Info("Fetching configuration from " + source)

	err = retry.Do(func() error {
		client := &getter.Client{
			Ctx:  ctx,
			Src:  source,
			Dst:  dst,
			Pwd:  pwd,
			Mode: mode,
		}
		return client.Get()
	},
		retry.Attempts(c.attempts()),
		retry.Delay(c.delay()),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			zap.L().Warn("Failed to fetch configuration, retrying", zap.Uint("attempt", n+1), zap.Error(err))
		}))

	if err != nil {
		return "", err
	}

	return dir, nil
}

// destination returns where the source is downloaded to. Single files are saved with the configured file
// name, keeping their extension, so viper finds them.
func (c ConfigSourceClient) destination(dir string, source string, configFile string) (string, getter.ClientMode) {
	// query strings and go-getter forced getters do not contribute to the extension
	path := strings.SplitN(source, "?", 2)[0]
	extension := strings.ToLower(filepath.Ext(path))

	for _, configExtension := range configExtensions {
		if extension == configExtension {
			return filepath.Join(dir, configFile+extension), getter.ClientModeFile
		}
	}

	return dir, getter.ClientModeDir
}

func (c ConfigSourceClient) attempts() uint {
	if c.Attempts == 0 {
		return 3
	}
	return c.Attempts
}

func (c ConfigSourceClient) delay() time.Duration {
	if c.Delay == 0 {
		return time.Second
	}
	return c.Delay
}
