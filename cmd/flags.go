package main

import (
	"flag"
	"time"

	"github.com/mediasniff/mediasniff/internal/cli"
	"github.com/mediasniff/mediasniff/internal/config"
)

func ParseFlags(conf config.Data) cli.Option {
	var option cli.Option

	probeTimeout, err := time.ParseDuration(conf.Probe.FetchTimeout)
	if err != nil {
		probeTimeout = 10 * time.Second
	}

	flag.StringVar(&option.Input, "input", "", "manifest URL(s) to probe, comma-separated, or a path to a JSON file of probe options (check example.json)")
	flag.StringVar(&option.Output, "output", conf.Probe.Output, "Output filename base used in generated download commands")
	flag.StringVar(&option.Format, "format", "mkv", "Container for generated ffmpeg commands: mkv or mp4")
	flag.StringVar(&option.Title, "title", "", "Title used for the generated output filename and command")
	flag.DurationVar(&option.Timeout, "timeout", probeTimeout, "Per-manifest fetch timeout (e.g. 10s, 1m)")
	flag.IntVar(&option.Threads, "threads", 5, "Number of parallel probes (batch mode only)")
	flag.BoolVar(&option.Copy, "copy", false, "Copy the generated command to the clipboard instead of printing only")
	flag.BoolVar(&option.Serve, "serve", false, "Run the capture server instead of probing")

	flag.Parse()

	return option
}
