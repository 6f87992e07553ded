package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oddbit-project/visitordata/config"
	"github.com/oddbit-project/visitordata/config/provider"
	"github.com/oddbit-project/visitordata/crypt/token"
	"github.com/oddbit-project/visitordata/log"
	"github.com/oddbit-project/visitordata/visitor"
)

const (
	VERSION   = "0.1.0"
	EnvPrefix = "VISITORDATA"
)

// CliArgs Command-line options
type CliArgs struct {
	ConfigFile    *string
	Count         *int
	Decode        *string
	ServiceWorker *string
	Seed          *int64
	Now           *int64
	ShowVersion   *bool
}

// Application visitordata cli
type Application struct {
	args      *CliArgs
	out       io.Writer
	ctx       context.Context
	logger    *log.Logger
	config    *visitor.Config
	logConfig *log.LogConfig
	generator *visitor.Generator
}

// decodedToken is the -decode output
type decodedToken struct {
	*visitor.Data
	Time time.Time `json:"time"`
}

func newCliArgs(fs *flag.FlagSet) *CliArgs {
	return &CliArgs{
		ConfigFile:    fs.String("c", "", "Config file (json)"),
		Count:         fs.Int("n", 1, "Number of tokens to generate"),
		Decode:        fs.String("decode", "", "Decode a token, or a ./file containing one"),
		ServiceWorker: fs.String("sw", "", "Extract visitor data from a saved sw.js_data response"),
		Seed:          fs.Int64("seed", -1, "Seed for deterministic random draws; negative uses a random seed"),
		Now:           fs.Int64("now", -1, "Clock as unix seconds; negative uses the system clock"),
		ShowVersion:   fs.Bool("version", false, "Show version"),
	}
}

// NewApplication loads configuration from the optional config file, then environment overrides
// Tokens and command output go to out, log messages to logOut
func NewApplication(args *CliArgs, out io.Writer, logOut io.Writer) (*Application, error) {
	app := &Application{
		args:      args,
		out:       out,
		config:    visitor.NewDefaultConfig(),
		logConfig: log.NewDefaultConfig(),
	}
	if err := app.loadConfig(); err != nil {
		return nil, err
	}
	if err := log.ConfigureWriter(app.logConfig, logOut); err != nil {
		return nil, err
	}
	app.ctx, app.logger = log.NewRequestContext(context.Background(), "visitordata")
	return app, nil
}

func (a *Application) loadConfig() error {
	if *a.args.ConfigFile != "" {
		cfg, err := provider.NewJsonProvider(*a.args.ConfigFile)
		if err != nil {
			return fmt.Errorf("cannot read config file: %w", err)
		}
		for key, dest := range map[string]any{"visitor": a.config, "log": a.logConfig} {
			if err = cfg.GetKey(key, dest); err != nil && !errors.Is(err, config.ErrNoKey) {
				return fmt.Errorf("invalid %s config: %w", key, err)
			}
		}
	}

	env := provider.NewEnvProvider(EnvPrefix, true)
	if err := env.GetKey("visitor", a.config); err != nil {
		return err
	}
	return env.GetKey("log", a.logConfig)
}

// Build assembles the token generator
func (a *Application) Build() error {
	opts := []visitor.GeneratorOption{
		visitor.WithLogger(a.logger),
	}
	if *a.args.Seed >= 0 {
		opts = append(opts, visitor.WithSource(token.NewSeededSource(uint64(*a.args.Seed))))
	}
	if *a.args.Now >= 0 {
		now := time.Unix(*a.args.Now, 0)
		opts = append(opts, visitor.WithClock(func() time.Time { return now }))
	}
	var err error
	if a.generator, err = visitor.NewGenerator(a.config, opts...); err != nil {
		log.Error(a.ctx, err, "invalid configuration")
	}
	return err
}

// Run executes the requested command; failures are logged before being returned
func (a *Application) Run() error {
	var err error
	switch {
	case *a.args.ServiceWorker != "":
		a.ctx = log.WithField(a.ctx, "command", "extract")
		err = a.extract(*a.args.ServiceWorker)
	case *a.args.Decode != "":
		a.ctx = log.WithField(a.ctx, "command", "decode")
		err = a.decode(config.StrOrFile(*a.args.Decode))
	default:
		a.ctx = log.WithField(a.ctx, "command", "generate")
		err = a.generate(*a.args.Count)
	}
	if err != nil {
		log.Error(a.ctx, err, "command failed")
	}
	return err
}

func (a *Application) generate(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid token count: %d", count)
	}
	log.Info(a.ctx, "generating visitor data", log.KV{"count": count, "region": a.config.Region})
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(a.out, a.generator.Generate()); err != nil {
			return err
		}
	}
	return nil
}

func (a *Application) decode(value string) error {
	data, err := a.generator.Decode(value)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(decodedToken{Data: data, Time: data.Time()})
}

func (a *Application) extract(fname string) error {
	body, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	value, err := visitor.ExtractFromServiceWorker(body)
	if err != nil {
		return err
	}
	log.FromContext(a.ctx).Infof("extracted visitor data from %s", fname)
	_, err = fmt.Fprintln(a.out, value)
	return err
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	args := newCliArgs(fs)
	_ = fs.Parse(os.Args[1:])

	if *args.ShowVersion {
		fmt.Printf("Version: %s\n", VERSION)
		os.Exit(0)
	}

	app, err := NewApplication(args, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Initialization failed: %v\n", err)
		os.Exit(1)
	}
	if app.Build() != nil || app.Run() != nil {
		os.Exit(1)
	}
}
