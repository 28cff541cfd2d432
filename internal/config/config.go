package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const (
	ssmBotTokenParam  = "/albot/prod/bot-token"
	ssmOpenAIKeyParam = "/albot/prod/openai-api-key"
)

type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	Port   int    `envconfig:"PORT" default:"8080"`
	DBPath string `envconfig:"DB_PATH" default:"data/albot.db"`

	BotToken string `envconfig:"BOT_TOKEN"`
	AdminID  int64  `envconfig:"ADMIN_ID" required:"true"`

	OpenAIKey         string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	CompletionTimeout time.Duration `envconfig:"COMPLETION_TIMEOUT" default:"30s"`

	BroadcastDelay time.Duration `envconfig:"BROADCAST_DELAY" default:"50ms"`
}

// New loads configuration from the environment. In non-dev mode secrets that
// are not present in the environment are fetched from SSM Parameter Store.
func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if !res.Dev {
		if err := res.loadSecrets(ctx); err != nil {
			return nil, err
		}
	}

	if res.BotToken == "" {
		return nil, errors.New("bot token is required")
	}
	if res.OpenAIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	return res, nil
}

func (c *Config) loadSecrets(ctx context.Context) error {
	if c.BotToken != "" && c.OpenAIKey != "" {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	client := ssm.NewFromConfig(cfg)

	if c.BotToken == "" {
		if c.BotToken, err = getSSMParameter(ctx, client, ssmBotTokenParam); err != nil {
			return err
		}
	}
	if c.OpenAIKey == "" {
		if c.OpenAIKey, err = getSSMParameter(ctx, client, ssmOpenAIKeyParam); err != nil {
			return err
		}
	}

	return nil
}

func getSSMParameter(ctx context.Context, client *ssm.Client, name string) (string, error) {
	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM parameter %s: %w", name, err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", fmt.Errorf("SSM parameter %s not found", name)
	}

	return *param.Parameter.Value, nil
}
