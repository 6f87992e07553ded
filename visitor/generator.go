package visitor

import (
	"sync"
	"time"

	"github.com/oddbit-project/visitordata/crypt/token"
	"github.com/oddbit-project/visitordata/log"
	"github.com/oddbit-project/visitordata/metrics"
	"github.com/oddbit-project/visitordata/utils"
	"github.com/rs/zerolog"
)

// maxSeed is the upper bound of the seed value; seeds are drawn from [1, maxSeed]
const maxSeed = 255

// ClockFunc returns the current time
type ClockFunc func() time.Time

// Generator builds visitor data tokens; it is safe for concurrent use
type Generator struct {
	config  *Config
	src     token.Source
	now     ClockFunc
	logger  *log.Logger
	metrics *metrics.Metrics
}

type GeneratorOption func(*Generator)

// WithSource sets the random source; src is wrapped for concurrent use
func WithSource(src token.Source) GeneratorOption {
	return func(g *Generator) {
		g.src = token.Locked(src)
	}
}

// WithClock sets the clock used for the token timestamp
func WithClock(now ClockFunc) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func WithLogger(logger *log.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) GeneratorOption {
	return func(g *Generator) {
		g.metrics = m
	}
}

// NewGenerator creates a new token generator
// if cfg is nil, NewDefaultConfig() is used
func NewGenerator(cfg *Config, opts ...GeneratorOption) (*Generator, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		config: cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = token.NewSource()
	}
	if g.logger == nil {
		g.logger = log.NewWithComponent("visitor", "generator")
	}
	return g, nil
}

// Next draws a new random Data
// Draw order is seed, id, timestamp offset; a seeded source and fixed clock give the same Data
func (g *Generator) Next() *Data {
	seed := uint64(1 + g.src.IntN(maxSeed))
	// config is validated, GenerateString cannot fail
	id := utils.Must(token.GenerateString(token.URLSafeAlphabet, g.config.IDLength, g.src))
	offset := uint64(g.src.IntN(g.config.MaxTimestampOffset))

	// no guard: an offset larger than the clock wraps around as unsigned
	timestamp := uint64(g.now().Unix()) - offset

	return &Data{
		ID:        id,
		Timestamp: timestamp,
		Region:    g.config.Region,
		Seed:      seed,
	}
}

// Generate returns a new visitor data token
func (g *Generator) Generate() string {
	data := g.Next()
	result := data.Encode()

	g.metrics.TokenGenerated()
	if g.logger.Enabled(zerolog.DebugLevel) {
		g.logger.Debug("visitor data generated", log.KV{
			"id":        data.ID,
			"timestamp": data.Timestamp,
			"region":    data.Region,
		})
	}
	return result
}

// Decode parses a token, recording the outcome in the generator metrics
func (g *Generator) Decode(value string) (*Data, error) {
	data, reason, err := decode(value)
	if err != nil {
		g.metrics.TokenRejected(reason)
		g.logger.Warn("visitor data rejected", log.KV{"reason": reason, "error": err.Error()})
		return nil, err
	}
	g.metrics.TokenDecoded()
	return data, nil
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return utils.Must(NewGenerator(nil))
})

// GenerateRandomVisitorData returns a new token using the process-wide generator
func GenerateRandomVisitorData() string {
	return defaultGenerator().Generate()
}
