package cli

import (
	"fmt"
	"io"

	"github.com/corpix/sigli/config"
	"github.com/corpix/sigli/errors"
	"github.com/corpix/sigli/log"

	cli "github.com/urfave/cli/v2"
)

type (
	BoolFlag        = cli.BoolFlag
	Command         = cli.Command
	Commands        = cli.Commands
	Context         = cli.Context
	Flag            = cli.Flag
	Flags           = []Flag
	PathFlag        = cli.PathFlag
	StringFlag      = cli.StringFlag
	StringSliceFlag = cli.StringSliceFlag

	App        = cli.App
	BeforeFunc = cli.BeforeFunc
	AfterFunc  = cli.AfterFunc
	ActionFunc = cli.ActionFunc
	Action     = func(*Context) error

	Config          = config.Config
	ConfigContainer = config.Container

	Cli struct {
		*App
		Config *ConfigContainer
	}

	Option func(*Cli)
)

var ErrCommandRequired = errors.New("command required")

//

func WithComposition(options ...Option) Option {
	return func(c *Cli) {
		for _, option := range options {
			option(c)
		}
	}
}

//

func WithName(name string) Option {
	return func(c *Cli) {
		c.Name = name
	}
}

func WithDescription(desc string) Option {
	return func(c *Cli) {
		c.Description = desc
	}
}

func WithUsage(usage string) Option {
	return func(c *Cli) {
		c.Usage = usage
	}
}

// WithVersion sets the version reported by -V/--version.
func WithVersion(version string) Option {
	return func(c *Cli) {
		c.Version = version
		cli.VersionFlag = &BoolFlag{
			Name:    "version",
			Aliases: []string{"V"},
			Usage:   "print the version",
		}
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Cli) {
		c.Config = config.New(cfg)
	}
}

// WithIO replaces standard streams, nil values keep the defaults.
func WithIO(r io.Reader, w io.Writer, ew io.Writer) Option {
	return func(c *Cli) {
		if r != nil {
			c.Reader = r
		}
		if w != nil {
			c.Writer = w
		}
		if ew != nil {
			c.ErrWriter = ew
		}
	}
}

//

func WithFlags(flags Flags) Option {
	return func(c *Cli) {
		c.Flags = append(c.Flags, flags...)
	}
}

func WithCommands(commands Commands) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, commands...)
	}
}

//

func ActionChain(current Action, next Action) Action {
	if current != nil {
		return func(ctx *Context) error {
			err := current(ctx)
			if err != nil {
				return err
			}
			return next(ctx)
		}
	}
	return next
}

func WithBefore(fn BeforeFunc) Option {
	return func(c *Cli) {
		c.Before = ActionChain(c.Before, fn)
	}
}
func WithAfter(fn AfterFunc) Option {
	return func(c *Cli) {
		c.After = ActionChain(c.After, fn)
	}
}
func WithAction(fn ActionFunc) Option {
	return func(c *Cli) {
		c.Action = ActionChain(c.Action, fn)
	}
}

// WithCommandRequired makes a run without a known subcommand fail.
func WithCommandRequired() Option {
	return WithAction(func(ctx *Context) error {
		if ctx.NArg() > 0 {
			return errors.Wrapf(ErrCommandRequired, "unknown command %q", ctx.Args().First())
		}
		return errors.Wrapf(ErrCommandRequired, "see %s --help", ctx.App.Name)
	})
}

//

func ConfigFromContext(ctx *Context, cfg Config, envPrefix string, unmarshaler config.Unmarshaler, validate bool) error {
	return config.Prepare(
		cfg, validate,
		config.Sources(ctx.StringSlice("config"), envPrefix, unmarshaler)...,
	)
}

// WithConfigTools loads cfg from --config files and the environment before
// any command runs. Environment variables are prefixed with envPrefix.
func WithConfigTools(cfg Config, envPrefix string, unmarshaler config.Unmarshaler, marshaler config.Marshaler) Option {
	return WithComposition(
		WithConfig(cfg),
		WithBefore(func(ctx *Context) error {
			// config tools handle broken configuration themselves
			validate := ctx.Args().First() != "config"
			return ConfigFromContext(ctx, cfg, envPrefix, unmarshaler, validate)
		}),
		func(c *Cli) {
			c.Flags = append(c.Flags, &StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to application configuration file, may be repeated",
			})

			commands := Commands{}

			if _, ok := c.Config.Unwrap().(config.Defaultable); ok {
				commands = append(commands, &Command{
					Name:    "show-default",
					Aliases: []string{"sd"},
					Usage:   "Show default configuration",
					Action: func(ctx *Context) error {
						defaults := c.Config.EmptyClone()
						err := config.Postprocess(
							defaults,
							config.WithDefaults(),
						)
						if err != nil {
							return err
						}
						return config.ToWriter(ctx.App.Writer, marshaler)(defaults)
					},
				})
			}

			if _, ok := c.Config.Unwrap().(config.Validatable); ok {
				commands = append(commands, &Command{
					Name:    "validate",
					Aliases: []string{"v"},
					Usage:   "Validate configuration and exit",
					Action: func(ctx *Context) error {
						err := config.Postprocess(cfg, config.WithValidation())
						if err != nil {
							return err
						}

						_, err = fmt.Fprintln(ctx.App.Writer, "configuration is valid")
						return err
					},
				})
			}

			commands = append(commands, &Command{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Show current configuration",
				Action: func(ctx *Context) error {
					return config.ToWriter(ctx.App.Writer, marshaler)(cfg)
				},
			})

			c.Commands = append(c.Commands, &Command{
				Name:        "config",
				Usage:       "Configuration tools",
				Subcommands: commands,
			})
		},
	)
}

// WithLogTools initializes the global logger from --log-level or cfg.
// Log records go to the application error writer unless options say otherwise.
func WithLogTools(cfg func() *log.Config, options ...log.Option) Option {
	return WithComposition(
		WithFlags(Flags{
			&StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "logging level (trace, debug, info, warn, error)",
			},
		}),
		WithBefore(func(ctx *Context) error {
			level := ctx.String("log-level")
			if level == "" && cfg != nil && cfg() != nil {
				level = cfg().Level
			}

			opts := options
			if ctx.App.ErrWriter != nil {
				opts = append([]log.Option{log.WithOutput(ctx.App.ErrWriter)}, options...)
			}
			return log.Init(level, opts...)
		}),
	)
}

func New(options ...Option) *Cli {
	c := &Cli{
		App: &App{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}
