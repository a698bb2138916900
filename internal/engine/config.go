package engine

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned by Config.Validate. It is fatal at startup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all engine configuration, injected from main.
type Config struct {
	ProviderURL          string        `validate:"required,url"`
	ProviderAPIKey       string        `validate:"required"`
	ProviderTimeout      time.Duration `validate:"gt=0"`
	ProviderRPS          float64       `validate:"gte=0"` // 0 = unpaced
	ProviderBurst        int           `validate:"gte=0"`
	MaxConcurrency       int           `validate:"gte=0,lte=16"` // 0 = one slot per strategy
	DateWindow           time.Duration `validate:"gte=0"`
	MaxResults           int           `validate:"gte=1,lte=100"`
	RedisURL             string        `validate:"omitempty,url"`
	CacheTTL             time.Duration `validate:"gte=0"` // 0 disables the provider cache
	CacheMaxEntries      int           `validate:"gte=0"`
	CacheCleanupInterval time.Duration `validate:"gte=0"`
	HTTPClient           *http.Client  `validate:"-"`
}

// DefaultConfig returns the configuration defaults; credentials are left empty.
func DefaultConfig() Config {
	return Config{
		ProviderURL:          "https://api.exa.ai",
		ProviderTimeout:      20 * time.Second,
		ProviderRPS:          5,
		ProviderBurst:        4,
		DateWindow:           30 * 24 * time.Hour,
		MaxResults:           50,
		CacheTTL:             15 * time.Minute,
		CacheMaxEntries:      500,
		CacheCleanupInterval: 5 * time.Minute,
		HTTPClient:           &http.Client{Timeout: 30 * time.Second},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports missing credentials or out-of-range settings.
// All problems are reported together, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
