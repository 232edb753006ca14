// Package browser opens external links in the user's default browser.
package browser

import (
	"io"
	"net/url"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"

	"solar-quote/internal/errors"
	"solar-quote/internal/logging"
)

// Opener opens a URL
type Opener interface {
	Open(rawURL string) error
}

// BrowserOpener opens links with the platform's default browser
type BrowserOpener struct {
	open func(string) error
}

// NewBrowserOpener creates an opener backed by the default browser. The
// launcher's own stdout/stderr are discarded so they do not mix with the menu.
func NewBrowserOpener() *BrowserOpener {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return &BrowserOpener{open: pkgbrowser.OpenURL}
}

// Open validates rawURL and opens it. Only http and https links are opened.
func (o *BrowserOpener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Newf(errors.TypeInvalidInput, "not an http(s) link: %q", rawURL)
	}

	if err := o.open(u.String()); err != nil {
		logging.Warn("failed to open browser", zap.String("url", u.String()), zap.Error(err))
		return errors.Internal("failed to open browser", err)
	}

	logging.Debug("opened contact link", zap.String("url", u.String()))
	return nil
}
