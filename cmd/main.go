package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/sync/errgroup"

	"github.com/mediasniff/mediasniff/internal/byteutil"
	"github.com/mediasniff/mediasniff/internal/cli"
	"github.com/mediasniff/mediasniff/internal/config"
	"github.com/mediasniff/mediasniff/pkg/capture"
	"github.com/mediasniff/mediasniff/pkg/command"
	"github.com/mediasniff/mediasniff/pkg/m3u8"
	"github.com/mediasniff/mediasniff/pkg/media"
	"github.com/mediasniff/mediasniff/pkg/spinner"
	"github.com/mediasniff/mediasniff/web/server"
	"github.com/mediasniff/mediasniff/web/server/handlers"
)

func main() {
	conf, err := config.Get()
	if err != nil {
		panic(err)
	}

	option := ParseFlags(*conf)

	if option.Serve || len(os.Args) == 1 {
		runServer(conf)
		return
	}

	runProbe(conf, option)
}

func runServer(conf *config.Data) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	headerTTL, err := time.ParseDuration(conf.Server.HeaderTTL)
	if err != nil {
		headerTTL = time.Minute
	}
	fetchTimeout, err := time.ParseDuration(conf.Server.FetchTimeout)
	if err != nil {
		fetchTimeout = capture.DefaultFetchTimeout
	}

	orch := capture.New(
		capture.NewStore(),
		capture.NewHeaderCache(headerTTL),
		capture.NewFetcher(fetchTimeout),
	)

	srv := server.New(conf.Server.Addr, handlers.NewAPI(orch))
	if err := srv.Run(ctx); err != nil {
		fmt.Println("server stopped:", err)
	}
}

type probeResult struct {
	unit     cli.Unit
	master   m3u8.MasterPlaylist
	duration float64
	err      error
}

func runProbe(conf *config.Data, option cli.Option) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	units := option.GetUnitsFromInput()
	fetcher := capture.NewFetcher(option.Timeout)
	results := make([]probeResult, len(units))

	var spin *spinner.Model
	if conf.Probe.ShowSpinner {
		spin = spinner.New(units, conf.Probe.Spinner, cancel)
		g.Go(func() error {
			spin.Run()
			return nil
		})
	}

	report := func(id string, stage string, err error, done bool) {
		if spin == nil || ctx.Err() != nil {
			return
		}
		spin.C <- spinner.Message{ID: id, Stage: stage, Err: err, Done: done}
	}

	g.Go(func() error {
		probeGroup, ctx := errgroup.WithContext(ctx)
		probeGroup.SetLimit(option.Threads)

		for i, unit := range units {
			i, unit := i, unit
			probeGroup.Go(func() error {
				results[i] = probeUnit(ctx, fetcher, unit, report)
				return nil
			})
		}

		probeGroup.Wait()
		cancel()
		return nil
	})

	g.Wait()

	for _, res := range results {
		printResult(conf, option, res)
	}
}

func probeUnit(ctx context.Context, fetcher *capture.Fetcher, unit cli.Unit, report func(id, stage string, err error, done bool)) probeResult {
	res := probeResult{unit: unit}

	report(unit.ID, "fetching manifest", nil, false)
	text, err := fetcher.Text(ctx, unit.URL, nil)
	if err != nil {
		res.err = err
		report(unit.ID, "", err, true)
		return res
	}

	report(unit.ID, "parsing", nil, false)
	res.master = m3u8.ParseMaster(unit.URL, text)
	if res.master.Err != nil {
		res.err = res.master.Err
		report(unit.ID, "", res.err, true)
		return res
	}

	if res.master.IsMaster && len(res.master.Variants) > 0 {
		report(unit.ID, "estimating duration", nil, false)
		if mediaText, err := fetcher.Text(ctx, res.master.Variants[0].URL, nil); err == nil {
			res.duration = m3u8.EstimateDuration(mediaText)
		}
		if res.duration > 0 {
			res.master.Variants = m3u8.EstimateVariantSizes(res.master.Variants, res.duration)
		}
	} else {
		// media playlist probed directly, duration is all we can report
		res.duration = m3u8.EstimateDuration(text)
	}

	report(unit.ID, "", nil, true)
	return res
}

func printResult(conf *config.Data, option cli.Option, res probeResult) {
	fmt.Println()
	fmt.Println(res.unit.URL)

	if res.err != nil {
		fmt.Println("  error:", res.err)
		return
	}

	if res.duration > 0 {
		fmt.Println("  duration:", byteutil.FormatDuration(res.duration))
	}

	if !res.master.IsMaster {
		fmt.Println("  media playlist (no variants)")
	}

	for _, v := range res.master.Variants {
		line := "  " + v.Name
		if v.EstimatedSizeFormatted != "" {
			line += "  ~" + v.EstimatedSizeFormatted
		}
		fmt.Println(line)
	}

	stream := media.Item{
		URL:    res.unit.URL,
		Kind:   media.KindStream,
		Format: "m3u8",
	}

	title := res.unit.Title
	if title == "" {
		title = option.Output
	}

	var cmd string
	if conf.Probe.Player == "ffmpeg" {
		cmd = command.Ffmpeg(stream, nil, formatOrDefault(res.unit.Format, option.Format), title)
	} else {
		cmd = command.Mpv(stream, nil)
	}

	fmt.Println()
	fmt.Println(cmd)

	if option.Copy {
		if err := clipboard.WriteAll(cmd); err != nil {
			fmt.Println("clipboard:", err)
		} else {
			fmt.Println("(copied to clipboard)")
		}
	}
}

func formatOrDefault(format, fallback string) string {
	if format != "" {
		return format
	}
	if fallback != "" {
		return fallback
	}
	return "mkv"
}
