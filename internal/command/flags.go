package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache"
)

// NewGlobalFlags returns the store selection flags. Each flag reads, in order,
// the command line, a PAGECACHE_* env variable and the config file at cfgPath.
func NewGlobalFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "driver",
			Aliases: []string{"d"},
			Usage:   "store driver (memory, redis, null)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PAGECACHE_DRIVER"),
				yaml.YAML("driver", altsrc.StringSourcer(cfgPath)),
			),
			Value: string(pagecache.DriverMemory),
			Validator: func(value string) error {
				return DriverValidator(value)
			},
		},
		&cli.StringFlag{
			Name:  "redis-addr",
			Usage: "redis address (host:port)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PAGECACHE_REDIS_ADDR"),
				yaml.YAML("redis-addr", altsrc.StringSourcer(cfgPath)),
			),
			Value: "127.0.0.1:6379",
		},
		&cli.StringFlag{
			Name:  "redis-password",
			Usage: "redis password",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PAGECACHE_REDIS_PASSWORD"),
				yaml.YAML("redis-password", altsrc.StringSourcer(cfgPath)),
			),
		},
		&cli.IntFlag{
			Name:  "redis-db",
			Usage: "redis database number",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PAGECACHE_REDIS_DB"),
				yaml.YAML("redis-db", altsrc.StringSourcer(cfgPath)),
			),
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "key prefix on shared stores",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("PAGECACHE_PREFIX"),
				yaml.YAML("prefix", altsrc.StringSourcer(cfgPath)),
			),
		},
	}
}
