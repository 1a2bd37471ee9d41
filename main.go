package main

import (
	"errors"
	"os"

	"github.com/juanmilkah/commands/cmd"
	"github.com/juanmilkah/commands/internal/catalog"
	"github.com/juanmilkah/commands/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Close()
	if err == nil {
		return
	}
	var le *catalog.LoadError
	if errors.As(err, &le) {
		logging.Error("ERROR: \n" + le.Error())
	} else {
		logging.Error("ERROR: " + err.Error())
	}
	os.Exit(1)
}
