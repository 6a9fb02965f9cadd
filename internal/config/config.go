// Package config locates the optional pagecache YAML configuration file.
//
// The file holds flag defaults keyed by flag name, e.g.
//
//	driver: redis
//	redis-addr: 127.0.0.1:6379
//	prefix: web
package config

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// FileName is the config file looked up in the standard locations.
const FileName = "pagecache.yaml"

// Path returns the config file to read flag defaults from, or "" when none
// exists. PAGECACHE_CONFIG wins over the standard locations.
func Path() string {
	if p := os.Getenv("PAGECACHE_CONFIG"); p != "" {
		return p
	}

	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file
		}
	}
	return ""
}
