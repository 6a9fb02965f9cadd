package command

import (
	"fmt"

	"github.com/goforj/pagecache"
)

// DriverValidator accepts the drivers the CLI can build.
func DriverValidator(value string) error {
	switch pagecache.Driver(value) {
	case pagecache.DriverMemory, pagecache.DriverRedis, pagecache.DriverNull:
		return nil
	default:
		return fmt.Errorf("unknown driver %q (want memory, redis or null)", value)
	}
}
