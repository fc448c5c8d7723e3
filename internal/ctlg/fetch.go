//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ctlg

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/str"
	"github.com/e-gun/CatalogTopicMiner/internal/vv"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var Msg = lnch.Msg

var (
	ErrBadStatus    = errors.New("catalog server did not answer 2xx")
	ErrEmptyCatalog = errors.New("catalog contains no usable datasets")
)

// Fetch - one GET (or one file read) and then Decode(); no retries
func Fetch(ctx context.Context, src string, timeout time.Duration) ([]str.Dataset, str.CatalogSummary, error) {
	const (
		MSG1 = "Fetch() retrieved %d datasets from %s (%d dropped as empty; %d duplicate ids)"
	)

	start := time.Now()

	rc, err := Open(ctx, src, timeout)
	if err != nil {
		return nil, str.CatalogSummary{Source: src}, err
	}
	defer rc.Close()

	dd, sum, err := Decode(io.LimitReader(rc, vv.MAXCATALOGBYTES))
	sum.Source = src
	if err != nil {
		return nil, sum, fmt.Errorf("decoding %s: %w", src, err)
	}
	if len(dd) == 0 {
		return nil, sum, ErrEmptyCatalog
	}

	Msg.PEEK(fmt.Sprintf(MSG1, sum.Kept, src, sum.Empty, sum.Duplicates))
	Msg.Timer("F1", "catalog fetched and flattened", start, start)
	return dd, sum, nil
}

// Open - an http(s) url, a file:// url, or a plain path
func Open(ctx context.Context, src string, timeout time.Duration) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return httpget(ctx, src, timeout)
	case strings.HasPrefix(src, "file://"):
		return os.Open(strings.TrimPrefix(src, "file://"))
	default:
		return os.Open(src)
	}
}

type cancelcloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelcloser) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

func httpget(ctx context.Context, url string, timeout time.Duration) (io.ReadCloser, error) {
	const (
		UA = "%s/%s"
	)

	cctx, cancel := context.WithTimeout(ctx, timeout)

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf(UA, vv.SHORTNAME, vv.VERSION))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("GET %s: %w (%s)", url, ErrBadStatus, resp.Status)
	}

	return cancelcloser{ReadCloser: resp.Body, cancel: cancel}, nil
}
