package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
)

var logfile *os.File
var verbose bool

var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

func init() { log.SetOutput(io.Discard) }

// Init mirrors every message into path. An empty path keeps file logging off.
func Init(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logfile = f
	log.SetOutput(f)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	log.SetOutput(io.Discard)
}

// SetOutput redirects console messages; nil leaves a stream unchanged.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func Info(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
	log.Println(msg)
}

func Success(msg string) {
	_, _ = io.WriteString(stdout, text.FgGreen.Sprint(msg)+"\n")
	log.Println(msg)
}

func Error(msg string) {
	_, _ = io.WriteString(stderr, text.FgRed.Sprint(msg)+"\n")
	log.Println("[ERROR] " + msg)
}

// SetVerbose toggles debug output on stderr.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	_, _ = io.WriteString(stderr, text.FgHiBlack.Sprint(msg)+"\n")
	log.Println("[DEBUG] " + msg)
}
