package capture

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/mediasniff/mediasniff/internal/byteutil"
	"github.com/mediasniff/mediasniff/pkg/command"
	"github.com/mediasniff/mediasniff/pkg/m3u8"
	"github.com/mediasniff/mediasniff/pkg/media"
)

// Response is the observed metadata of one completed HTTP response,
// reported by the capture helper.
type Response struct {
	RequestID       string            `json:"requestId"`
	TabID           int               `json:"tabId"`
	URL             string            `json:"url"`
	Method          string            `json:"method"`
	StatusCode      int               `json:"statusCode"`
	RequestHeaders  map[string]string `json:"requestHeaders"`
	ResponseHeaders map[string]string `json:"responseHeaders"`
}

// NotifyFunc receives every newly stored item, e.g. to push it over the
// live feed.
type NotifyFunc func(tabID int, item media.Item)

type Orchestrator struct {
	store     *Store
	headers   *HeaderCache
	fetcher   *Fetcher
	readiness *Readiness
	group     singleflight.Group
	notifyFn  NotifyFunc
}

func New(store *Store, headers *HeaderCache, fetcher *Fetcher) *Orchestrator {
	return &Orchestrator{
		store:     store,
		headers:   headers,
		fetcher:   fetcher,
		readiness: NewReadiness(),
	}
}

func (o *Orchestrator) SetNotifier(fn NotifyFunc) {
	o.notifyFn = fn
}

func (o *Orchestrator) Store() *Store {
	return o.store
}

func (o *Orchestrator) Readiness() *Readiness {
	return o.readiness
}

func (o *Orchestrator) Fetcher() *Fetcher {
	return o.fetcher
}

// RememberRequest stores request headers until the matching response
// arrives. Returns the request id, generating one when the helper did not
// supply it.
func (o *Orchestrator) RememberRequest(requestID string, headers map[string]string) string {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	o.headers.Put(requestID, headers)
	return requestID
}

// Capture classifies one observed response and, when it is trackable
// media, enriches and stores it. Returns nil with no error for responses
// that are filtered out, unrecognized, or already captured.
func (o *Orchestrator) Capture(ctx context.Context, resp Response) (*media.Item, error) {
	if !media.Eligible(resp.URL, resp.TabID, resp.StatusCode, resp.Method) {
		return nil, nil
	}

	ext := media.ExtensionFromURL(resp.URL)
	cls := media.Classify(resp.URL, resp.ResponseHeaders["Content-Type"], ext)
	if cls == nil {
		return nil, nil
	}

	if o.store.Contains(resp.TabID, cls.Kind, resp.URL) {
		return nil, nil
	}

	headers := resp.RequestHeaders
	if len(headers) == 0 && resp.RequestID != "" {
		if cached, ok := o.headers.Get(resp.RequestID); ok {
			headers = cached
		}
	}

	item := media.Item{
		URL:       resp.URL,
		Kind:      cls.Kind,
		Format:    cls.Format,
		MediaType: cls.MediaType,
		Name:      media.DisplayName(resp.URL, resp.ResponseHeaders["Content-Disposition"]),
		Size:      contentLength(resp.ResponseHeaders),
		Headers:   headers,
		Timestamp: time.Now(),
	}

	if item.Kind == media.KindSubtitle {
		if code := command.DetectLanguage(item.URL); code != "" {
			item.LanguageCode = code
			item.LanguageName = command.LanguageName(code)
		}
	}

	// Enrichment happens before the item is stored; once persisted an item
	// is never updated.
	if item.MediaType == media.TypeHLS {
		o.enrich(ctx, &item)
	}

	if !o.store.Add(resp.TabID, item) {
		return nil, nil
	}

	if o.notifyFn != nil {
		o.notifyFn(resp.TabID, item)
	}

	return &item, nil
}

// enrich fetches the captured manifest and, when it turns out to be a
// master playlist, estimates duration and per-variant sizes from the
// highest-bandwidth variant's media playlist. One representative playlist
// is enough: one extra round trip buys a good-enough size estimate for
// every variant. Any failure leaves the item unenriched.
func (o *Orchestrator) enrich(ctx context.Context, item *media.Item) {
	type enrichment struct {
		master   m3u8.MasterPlaylist
		duration float64
	}

	// concurrent captures of the same manifest share one fetch+parse
	v, err, _ := o.group.Do(item.URL, func() (any, error) {
		text, err := o.fetcher.Text(ctx, item.URL, item.Headers)
		if err != nil {
			return nil, err
		}

		master := m3u8.ParseMaster(item.URL, text)
		if !master.IsMaster || len(master.Variants) == 0 {
			return enrichment{master: master}, nil
		}

		var duration float64
		if mediaText, err := o.fetcher.Text(ctx, master.Variants[0].URL, item.Headers); err == nil {
			duration = m3u8.EstimateDuration(mediaText)
		}
		if duration > 0 {
			master.Variants = m3u8.EstimateVariantSizes(master.Variants, duration)
		}

		return enrichment{master: master, duration: duration}, nil
	})
	if err != nil {
		return
	}

	e := v.(enrichment)
	if !e.master.IsMaster {
		return
	}

	item.IsMasterPlaylist = true
	item.Variants = e.master.Variants
	if e.duration > 0 {
		item.Duration = e.duration
		item.DurationFormatted = byteutil.FormatDuration(e.duration)
	}
}

// DropTab clears the captures and readiness state of a tab on navigation
// or close.
func (o *Orchestrator) DropTab(tabID int) {
	o.store.DropTab(tabID)
	o.readiness.Invalidate(tabID)
}

func contentLength(headers map[string]string) int64 {
	n, err := strconv.ParseInt(headers["Content-Length"], 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
