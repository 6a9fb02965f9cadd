package command

import (
	"context"

	"github.com/apex/log"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"

	"github.com/goforj/pagecache"
)

// openStore builds the store selected by the global flags. The returned func
// releases any connection held by the store.
func openStore(ctx context.Context, cmd *cli.Command) (pagecache.Store, func(), error) {
	driver := pagecache.Driver(cmd.String("driver"))
	if err := DriverValidator(string(driver)); err != nil {
		return nil, nil, err
	}
	opts := []pagecache.StoreOption{pagecache.WithPrefix(cmd.String("prefix"))}

	if driver != pagecache.DriverRedis {
		log.Debugf("using %s store", driver)
		return pagecache.NewStoreWith(ctx, driver, opts...), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cmd.String("redis-addr"),
		Password: cmd.String("redis-password"),
		DB:       cmd.Int("redis-db"),
	})
	log.WithField("addr", cmd.String("redis-addr")).Debug("using redis store")
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("closing redis client")
		}
	}
	return pagecache.NewRedisStore(ctx, client, opts...), closeFn, nil
}
