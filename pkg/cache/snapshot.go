// pkg/cache/snapshot.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/xintegrity/pkg/compress"
	"github.com/lk2023060901/xintegrity/pkg/pool/bytebuff"
)

// snapshotVersion 快照格式版本
// 指纹合并规则一旦变化必须升版，避免新老指纹混用
const snapshotVersion = 1

// snapshotEnvelope 快照外层信封
// 载荷按 Compression 指定的算法压缩，JSON 里以 base64 形式出现
type snapshotEnvelope struct {
	Version     int    `json:"version"`
	Compression string `json:"compression"`
	Payload     []byte `json:"payload"`
}

// snapshotEntry 快照里的单个条目
type snapshotEntry struct {
	Checksum uint32    `json:"checksum"`
	LastSeen time.Time `json:"last_seen"`
}

// snapshotBody 快照载荷：内容键 → 条目
type snapshotBody struct {
	Entries map[string]snapshotEntry `json:"entries"`
}

// Export 导出全部缓存状态
// Import(Export()) 必须还原出 IsDirty 行为完全一致的缓存
func (c *Cache) Export(ctx context.Context) ([]byte, error) {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return nil, err
	}

	body := snapshotBody{Entries: make(map[string]snapshotEntry, len(keys))}
	for _, key := range keys {
		e, ok, err := c.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		body.Entries[key] = snapshotEntry{Checksum: e.Checksum, LastSeen: e.LastSeen}
	}

	buf := bytebuff.Get(4096)
	defer bytebuff.Put(buf)

	if err := json.NewEncoder(buf).Encode(&body); err != nil {
		return nil, errors.Wrap(err, "encode snapshot body")
	}

	codec, err := compress.New(compress.Type(c.compression))
	if err != nil {
		return nil, err
	}
	payload, err := codec.Encode(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "compress snapshot")
	}

	return json.Marshal(&snapshotEnvelope{
		Version:     snapshotVersion,
		Compression: codec.Name(),
		Payload:     payload,
	})
}

// Import 从快照恢复缓存状态，覆盖现有全部条目
func (c *Cache) Import(ctx context.Context, data []byte) error {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.Wrapf(ErrSnapshotCorrupt, "decode envelope: %v", err)
	}
	if env.Version != snapshotVersion {
		return errors.Wrapf(ErrSnapshotVersion, "got %d, want %d", env.Version, snapshotVersion)
	}

	codec, err := compress.New(compress.Type(env.Compression))
	if err != nil {
		return err
	}
	raw, err := codec.Decode(env.Payload)
	if err != nil {
		return errors.Wrapf(ErrSnapshotCorrupt, "decompress payload: %v", err)
	}

	var body snapshotBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errors.Wrapf(ErrSnapshotCorrupt, "decode body: %v", err)
	}

	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	for key, se := range body.Entries {
		if err := c.store.Set(ctx, Entry{Key: key, Checksum: se.Checksum, LastSeen: se.LastSeen}); err != nil {
			return err
		}
	}
	return nil
}
