package deadlinecloud

import (
	"context"
	"net/http"
	"time"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/deadline"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/gojek/heimdall/v7"
	"github.com/klothoplatform/farmcreator/pkg/logging"
	"github.com/pkg/errors"
)

type SessionOptions struct {
	// Region overrides the region resolved from the environment and shared config.
	Region string
	// Profile selects a named profile from the shared config files.
	Profile     string
	HTTPTimeout time.Duration
}

const defaultHTTPTimeout = 30 * time.Second

// NewClient builds a Client from the default credential chain. Every round trip
// is logged by a heimdall plugin; retries are left to the SDK.
func NewClient(ctx context.Context, opts SessionOptions) (*Client, error) {
	hc := newHTTPClient(opts.HTTPTimeout, newRequestLogger(logging.GetLogger(ctx).Named("http")))

	loadOpts := []func(*config.LoadOptions) error{
		config.WithHTTPClient(hc),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load AWS configuration")
	}

	c := New(deadline.NewFromConfig(cfg), iam.NewFromConfig(cfg), sts.NewFromConfig(cfg))
	c.Region = cfg.Region
	return c, nil
}

func newHTTPClient(timeout time.Duration, plugins ...heimdall.Plugin) *http.Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &pluginTransport{
			base:    awshttp.NewBuildableClient().GetTransport(),
			plugins: plugins,
		},
	}
}

// pluginTransport runs heimdall plugins around each round trip. Responses and
// transport errors reach the SDK unchanged, so its retryer can still classify
// connection errors and idle connections are reused.
type pluginTransport struct {
	base    http.RoundTripper
	plugins []heimdall.Plugin
}

func (t *pluginTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, p := range t.plugins {
		p.OnRequestStart(req)
	}
	resp, err := t.base.RoundTrip(req)
	for _, p := range t.plugins {
		if err != nil {
			p.OnError(req, err)
		} else {
			p.OnRequestEnd(req, resp)
		}
	}
	return resp, err
}
