package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultRecycleAfter is the default number of pages opened before the
// browser is relaunched.
const DefaultRecycleAfter = 75

// Manager owns the browser lifecycle for extraction pages. Chrome
// accumulates memory under sustained automation and the baseline never
// fully recovers even with proper page cleanup, so the browser is replaced
// after a page budget is spent.
//
// Manager is safe for concurrent use.
type Manager struct {
	browser      *rod.Browser
	lnchr        *launcher.Launcher
	pages        int64
	recycleAfter int64
	mu           sync.Mutex
	closed       atomic.Bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithRecycleAfter sets the number of pages opened before the browser is
// recycled. Defaults to DefaultRecycleAfter.
func WithRecycleAfter(n int64) Option {
	return func(m *Manager) {
		m.recycleAfter = n
	}
}

// NewManager launches a headless browser. Close must be called when the
// Manager is no longer needed.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{recycleAfter: DefaultRecycleAfter}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.launchBrowser(); err != nil {
		return nil, err
	}
	return m, nil
}

// OpenPage opens a page on the managed browser, navigated and loaded,
// recycling the browser first if the page budget is spent.
func (m *Manager) OpenPage(ctx context.Context, url string) (*Page, error) {
	m.mu.Lock()
	if atomic.LoadInt64(&m.pages) >= m.recycleAfter {
		m.recycleBrowser()
	}
	browser := m.browser
	m.mu.Unlock()

	page, err := NewPage(ctx, browser, url)
	if err != nil {
		return nil, err
	}
	atomic.AddInt64(&m.pages, 1)
	return page, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (m *Manager) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	m.browser = browser
	m.lnchr = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (m *Manager) closeBrowser() error {
	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	if m.lnchr != nil {
		m.lnchr.Kill()
		m.lnchr = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one. If the new
// launch fails the old browser is kept so callers degrade rather than fail.
// Must be called with mu held.
func (m *Manager) recycleBrowser() {
	oldBrowser := m.browser
	oldLauncher := m.lnchr
	m.browser = nil
	m.lnchr = nil

	if err := m.launchBrowser(); err != nil {
		m.browser = oldBrowser
		m.lnchr = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&m.pages, 0)
}
