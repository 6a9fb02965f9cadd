package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up apex/log with a compact handler on stderr and a level
// from the PAGECACHE_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("PAGECACHE_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{Out: os.Stderr})
	log.SetLevelFromString(level)
}

// CustomHandler formats log messages as "<timestamp> <L> <message> k=v ...".
type CustomHandler struct {
	Out io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := e.Timestamp.Format("2006-01-02 15:04:05")
	if e.Timestamp.IsZero() {
		timestamp = time.Now().Format("2006-01-02 15:04:05")
	}
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.Out, b.String())
	return err
}
