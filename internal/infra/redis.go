package infra

import (
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// InitRedis builds a client from a redis:// URL. It does not dial; the
// first command or an explicit Ping does.
func InitRedis(url string) (*backend.Client, error) {
	opts, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return backend.NewClient(opts), nil
}
