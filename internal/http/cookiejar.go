package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// fileJar is an http.CookieJar backed by a JSON file. The same path is
// both the read source and the write sink, so cookies survive across
// requests and across client instances. Concurrent writers to one path
// have no ordering guarantee; the last save wins.
type fileJar struct {
	path string
	mu   sync.Mutex
}

// storedCookie is the on-disk representation of one cookie.
type storedCookie struct {
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

func newFileJar(path string) *fileJar {
	return &fileJar{path: path}
}

// SetCookies merges the response cookies into the jar file. A cookie
// with MaxAge < 0 or an elapsed expiry removes the stored entry.
func (j *fileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	stored := j.load()

	for _, cookie := range cookies {
		domain := cookie.Domain
		if domain == "" {
			domain = u.Hostname()
		}
		domain = strings.TrimPrefix(domain, ".")

		path := cookie.Path
		if path == "" {
			path = "/"
		}

		// Upsert by (domain, path, name).
		kept := stored[:0]
		for _, sc := range stored {
			if sc.Domain == domain && sc.Path == path && sc.Name == cookie.Name {
				continue
			}
			kept = append(kept, sc)
		}
		stored = kept

		if cookie.MaxAge < 0 {
			continue
		}

		expires := cookie.Expires
		if cookie.MaxAge > 0 {
			expires = time.Now().Add(time.Duration(cookie.MaxAge) * time.Second)
		}
		if !expires.IsZero() && expires.Before(time.Now()) {
			continue
		}

		stored = append(stored, storedCookie{
			Domain:   domain,
			Path:     path,
			Name:     cookie.Name,
			Value:    cookie.Value,
			Expires:  expires,
			Secure:   cookie.Secure,
			HTTPOnly: cookie.HttpOnly,
		})
	}

	j.save(stored)
}

// Cookies returns the stored cookies that match the request host and
// path, skipping expired entries.
func (j *fileJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	var cookies []*http.Cookie
	host := u.Hostname()

	for _, sc := range j.load() {
		if !domainMatch(host, sc.Domain) {
			continue
		}
		if !strings.HasPrefix(pathOrRoot(u.Path), sc.Path) {
			continue
		}
		if sc.Secure && u.Scheme != "https" {
			continue
		}
		if !sc.Expires.IsZero() && sc.Expires.Before(time.Now()) {
			continue
		}

		cookies = append(cookies, &http.Cookie{
			Name:  sc.Name,
			Value: sc.Value,
		})
	}

	return cookies
}

// load reads the jar file; a missing or unreadable file is an empty jar.
func (j *fileJar) load() []storedCookie {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil
	}

	return stored
}

// save is best-effort, mirroring the transport layer's tolerance for a
// broken jar file.
func (j *fileJar) save(stored []storedCookie) {
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(j.path, data, 0600)
}

func domainMatch(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
