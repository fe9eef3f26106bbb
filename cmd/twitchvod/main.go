package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/wmw9/twitchvod"
	"github.com/wmw9/twitchvod/config"
)

const VERSION = "0.3"

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	if settings.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	os.Exit(run(os.Args, deps{
		settings: settings,
		loadExecutors: func() (map[string]*config.Command, error) {
			return config.Load(settings.ConfigFile)
		},
		fetcher: &twitchvod.Client{
			BaseURL:  settings.APIURL,
			ClientID: settings.ClientID,
			Log:      logger,
		},
		prompt: surveyPrompt{},
		streams: config.Streams{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Log:    logger,
		},
	}))
}
