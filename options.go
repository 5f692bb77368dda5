package compass

import (
	"context"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	keyPrefix string
	logger    *zap.Logger

	workflowURL   string
	workflowToken string

	provider InterviewProvider
	newID    func() string
}

// WithRedis sets the Redis connection parameters.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedisCluster sets multiple Redis addresses for cluster deployments.
func WithRedisCluster(addrs []string, username, password string, db int) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
		c.db = db
	}
}

// WithKeyPrefix overrides the storage key prefix. Applies process-wide: all
// clients in the process share one prefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithLogger sets the logger used by outbound clients. Defaults to a no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithWorkflowWebhook configures the external workflow engine webhook used by
// crawl and scrape triggers. Token may be empty.
func WithWorkflowWebhook(url, token string) Option {
	return func(c *clientConfig) {
		c.workflowURL = url
		c.workflowToken = token
	}
}

// WithInterviewProvider plugs in the AI interview provider. Without one,
// interview operations return an error.
func WithInterviewProvider(p InterviewProvider) Option {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithIDGenerator overrides the ID source for all created records.
func WithIDGenerator(fn func() string) Option {
	return func(c *clientConfig) {
		c.newID = fn
	}
}

// InterviewProvider generates interview questions and distills transcripts
// into requirement insights. NextQuestion returns an empty string when the
// provider decides the interview is finished.
type InterviewProvider interface {
	OpeningQuestion(ctx context.Context, projectName string) (string, error)
	NextQuestion(ctx context.Context, transcript []InterviewMessage) (string, error)
	ExtractInsights(ctx context.Context, transcript []InterviewMessage) ([]string, error)
}
