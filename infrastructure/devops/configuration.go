package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Config is the service configuration, stored as one yaml document in SSM
// parameter store under /falcon/config.
type Config struct {
	Port               int    `yaml:"port"`
	DatabaseDSN        string `yaml:"databaseDsn"`
	MaxConnections     int    `yaml:"maxConnections"`
	JwtSecret          string `yaml:"jwtSecret"`
	CimTransactionMode string `yaml:"cimTransactionMode"`
	Slack              struct {
		Token        string `yaml:"token"`
		InfoChannel  string `yaml:"infoChannel"`
		ErrorChannel string `yaml:"errorChannel"`
	} `yaml:"slack"`
}

var (
	once    sync.Once
	loaded  Config
	loadErr error
)

// LoadConfig resolves the configuration once per process. FALCON_CONFIG
// points at a local yaml file and skips SSM entirely, which is how tests
// and local development run.
func LoadConfig(ctx context.Context) (Config, error) {
	once.Do(func() {
		var raw []byte

		if path := os.Getenv("FALCON_CONFIG"); path != "" {
			raw, loadErr = os.ReadFile(path)
			if loadErr != nil {
				loadErr = fmt.Errorf("read local config: %w", loadErr)
				return
			}
		} else {
			cfg, err := config.LoadDefaultConfig(ctx)
			if err != nil {
				loadErr = fmt.Errorf("load aws config: %w", err)
				return
			}

			client := ssm.NewFromConfig(cfg)
			out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
				Name:           aws.String("/falcon/config"),
				WithDecryption: aws.Bool(true),
			})
			if err != nil {
				loadErr = fmt.Errorf("get parameter: %w", err)
				return
			}
			raw = []byte(*out.Parameter.Value)
		}

		var parsed Config
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		if parsed.Port == 0 {
			parsed.Port = 8080
		}
		if parsed.MaxConnections == 0 {
			parsed.MaxConnections = 25
		}

		loaded = parsed
	})

	return loaded, loadErr
}
