package server

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tartampluch/birthday-board/internal/config"
)

// cacheItem stores one rendered artifact and its HTTP caching metadata.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// boardCache holds the latest artifact behind an atomic pointer.
// Artifacts are read frequently by clients and replaced only when a
// render completes, so lock-free reads beat a RWMutex on the hot path.
type boardCache struct {
	item atomic.Pointer[cacheItem]
}

// update atomically replaces the served content. Concurrent readers see
// either the old or the new complete item, never a partial state.
func (b *boardCache) update(data []byte) {
	hash := sha256.Sum256(data)
	b.item.Store(&cacheItem{
		data:         data,
		etag:         fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	})
}

// cachedHandler serves one cache with conditional-request support, so
// chat clients polling the board image get 304s instead of re-downloads.
func (s *Server) cachedHandler(cache *boardCache, mime string) gin.HandlerFunc {
	return func(c *gin.Context) {
		item := cache.item.Load()
		if item == nil {
			c.Header(config.HeaderRetryAfter, config.RetryAfterSeconds)
			c.String(http.StatusServiceUnavailable, config.HTTPMsgInitializing)
			return
		}

		c.Header(config.HeaderXContentType, config.MimeNoSniff)
		c.Header(config.HeaderCacheControl, config.CacheControlPrivate)
		c.Header(config.HeaderETag, item.etag)
		c.Header(config.HeaderLastModified, item.lastModified)

		if match := c.GetHeader(config.HeaderIfNoneMatch); match == item.etag {
			c.Status(http.StatusNotModified)
			return
		}

		if since := c.GetHeader(config.HeaderIfModifiedSince); since != "" {
			if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
				if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
					if !serverTime.After(clientTime) {
						c.Status(http.StatusNotModified)
						return
					}
				}
			}
		}

		if c.Request.Method == http.MethodHead {
			c.Header(config.HeaderContentType, mime)
			c.Status(http.StatusOK)
			return
		}
		c.Data(http.StatusOK, mime, item.data)
	}
}
