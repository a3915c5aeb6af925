package main

import (
	"log"
	"os"

	"github.com/trezcool/tutorai/core"
	"github.com/trezcool/tutorai/services/apiclient"
	logsvc "github.com/trezcool/tutorai/services/logger"
)

func main() {
	stdLogger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds)

	conf, err := core.NewConfig()
	if err != nil {
		stdLogger.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	defer logger.Wait()

	// start CLI
	cli := commandLine{
		view: NewView(apiclient.NewFromConfig(conf), logger),
		out:  os.Stdout,
		in:   os.Stdin,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp && err != errFailed {
			stdLogger.Printf("\nerror: %s\n", err)
		}
		logger.Wait()
		os.Exit(1)
	}
}
