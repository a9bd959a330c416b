package linkopen

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/browser"
)

// Browser opens links in the system's default browser.
type Browser struct {
	open func(url string) error
}

func NewBrowser() *Browser {
	return &Browser{open: browser.OpenURL}
}

func (b *Browser) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := b.open(url); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}

	return nil
}

// Recorder keeps links instead of opening them. The HTTP API returns the
// recorded link to its caller.
type Recorder struct {
	mu    sync.Mutex
	links []string
}

func (r *Recorder) Open(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links = append(r.links, url)

	return nil
}

// Last returns the most recently recorded link.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.links) == 0 {
		return "", false
	}

	return r.links[len(r.links)-1], true
}
