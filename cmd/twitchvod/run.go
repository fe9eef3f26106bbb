package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/wmw9/twitchvod"
	"github.com/wmw9/twitchvod/config"
)

type fetcher interface {
	Fetch(id string) (*twitchvod.VideoInfo, error)
}

// deps carries everything the driver would otherwise read from the process.
type deps struct {
	settings      *config.Settings
	loadExecutors func() (map[string]*config.Command, error)
	fetcher       fetcher
	prompt        prompter
	streams       config.Streams
}

var errUsage = errors.New("usage")

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "twitchvod %v - Resolves a twitch.tv VOD into its m3u8 HTTP Live Streaming (HLS) URL\n", VERSION)
	fmt.Fprintf(w, "Usage: %s [--<executor>] <URL>\n", prog)
}

func run(args []string, d deps) int {
	prog := "twitchvod"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	rawURL, name, err := parseArgs(args)
	if err != nil {
		usage(d.streams.Stderr, prog)
		return 1
	}

	if err := resolve(rawURL, name, d); err != nil {
		fmt.Fprintf(d.streams.Stderr, "error: %v\n", err)
		if errors.Is(err, twitchvod.ErrInvalidURL) {
			usage(d.streams.Stderr, prog)
		}
		return 1
	}
	return 0
}

// parseArgs accepts "<URL>" or "--name <URL>" in either order. An empty name
// selects the print executor.
func parseArgs(args []string) (rawURL, name string, err error) {
	switch len(args) {
	case 1:
		if strings.HasPrefix(args[0], "--") {
			return "", "", errUsage
		}
		return args[0], "", nil
	case 2:
		e, u := args[0], args[1]
		if strings.HasPrefix(u, "--") {
			e, u = u, e
		}
		if !strings.HasPrefix(e, "--") || strings.HasPrefix(u, "--") {
			return "", "", errUsage
		}
		name = strings.TrimPrefix(e, "--")
		if name == "" {
			return "", "", errUsage
		}
		return u, name, nil
	default:
		return "", "", errUsage
	}
}

func resolveExecutor(name string, load func() (map[string]*config.Command, error)) (config.Executor, error) {
	if name == "" {
		return config.Print{}, nil
	}

	executors, err := load()
	if err != nil {
		return nil, err
	}
	cmd, ok := executors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", twitchvod.ErrUnknownExecutor, name)
	}
	return cmd, nil
}

func resolve(rawURL, name string, d deps) error {
	ex, err := resolveExecutor(name, d.loadExecutors)
	if err != nil {
		return err
	}

	id, err := twitchvod.VideoID(rawURL)
	if err != nil {
		return err
	}

	info, err := d.fetcher.Fetch(id)
	if err != nil {
		return err
	}
	if d.settings != nil && d.settings.Debug {
		pp.Fprintln(d.streams.Stderr, info)
	}

	fmt.Fprintf(d.streams.Stdout, "%s - %s\n", info.ChannelName, info.Title)

	res, err := selectResolution(info, d.prompt)
	if err != nil {
		return err
	}

	return ex.Execute(info.Values(info.URL(res)), d.streams)
}

// selectResolution offers the labels in sorted order with the last one as the
// default.
func selectResolution(info *twitchvod.VideoInfo, p prompter) (string, error) {
	labels := slices.Sorted(maps.Keys(info.Resolutions))
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: video %s has no resolutions", twitchvod.ErrInvalidResponseData, info.ID)
	}

	files := make([]string, len(labels))
	for i, l := range labels {
		files[i] = info.Resolutions[l]
	}

	idx, err := p.Select("Select resolution", labels, files, len(labels)-1)
	if err != nil {
		return "", fmt.Errorf("%w: %v", twitchvod.ErrPromptFailed, err)
	}
	if idx < 0 || idx >= len(labels) {
		return "", fmt.Errorf("%w: choice %d out of range", twitchvod.ErrPromptFailed, idx)
	}
	return labels[idx], nil
}
