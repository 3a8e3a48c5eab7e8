package workers

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

type cacheKey [sha256.Size]byte

// cachedProcessor remembers the results of an expensive Processor. Clients
// tend to upload the same image several times while tuning parameters.
type cachedProcessor struct {
	proc  Processor
	cache *lru.Cache
}

// Cached wraps proc with an LRU of size results. Streamers are returned as is.
func Cached(proc Processor, size int) (Processor, error) {
	if _, ok := proc.(Streamer); ok || size <= 0 {
		return proc, nil
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "create result cache")
	}
	return &cachedProcessor{proc: proc, cache: cache}, nil
}

func (c *cachedProcessor) Process(ctx context.Context, img []byte, kind string, p Params) ([]byte, error) {
	key := resultKey(img, kind, p)
	if v, ok := c.cache.Get(key); ok {
		return v.([]byte), nil
	}
	out, err := c.proc.Process(ctx, img, kind, p)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, out)
	return out, nil
}

func resultKey(img []byte, kind string, p Params) cacheKey {
	h := sha256.New()
	h.Write(img)
	h.Write([]byte(NormalizeKind(kind)))
	var b [8]byte
	for _, v := range []int{p.ColorsPerRow, p.ColorWidth, p.ColorHeight, p.ColorNum, p.Width, p.Height} {
		binary.BigEndian.PutUint64(b[:], uint64(v))
		h.Write(b[:])
	}
	var key cacheKey
	copy(key[:], h.Sum(nil))
	return key
}
