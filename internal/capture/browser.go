package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single screenshot run, browser startup included.
const DefaultTimeout = 30 * time.Second

// captureScale is the device scale factor for screenshots. 2x matches the
// print-quality capture of the preview surface.
const captureScale = 2.0

// viewportWidth is the CSS pixel width the page is laid out at. Matches the
// max-width of the layout templates plus margins.
const viewportWidth = 720

// Browser screenshots HTML pages in headless Chrome. Requires a Chrome or
// Chromium binary on the host.
type Browser struct {
	Timeout  time.Duration
	ExecPath string // optional explicit browser binary
}

// NewBrowser creates a Browser with the default timeout.
func NewBrowser() *Browser {
	return &Browser{Timeout: DefaultTimeout}
}

// Screenshot renders the given HTML in a headless browser and returns a PNG
// of the full page.
func (b *Browser) Screenshot(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(viewportWidth, 0, chromedp.EmulateScale(captureScale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("browser capture failed: %w", err)
	}

	return png, nil
}
