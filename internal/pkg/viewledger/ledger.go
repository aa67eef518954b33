// Package viewledger 维护访客侧的浏览去重账本：
// slug → 最近计数时间戳的有界映射，随 Cookie 往返，服务端只做校验与修剪。
package viewledger

import (
	"encoding/base64"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

// Ledger slug → 最近一次计数的 unix 秒
type Ledger map[string]int64

// Decode 从 Cookie 值还原账本，格式损坏一律当作空账本处理，不报错
func Decode(raw string) Ledger {
	if raw == "" {
		return Ledger{}
	}

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Ledger{}
	}

	var l Ledger
	if err = json.Unmarshal(data, &l); err != nil || l == nil {
		return Ledger{}
	}
	return l
}

// Encode 序列化为可放进 Cookie 的 base64url 字符串
func (l Ledger) Encode() (string, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Seen 判断 slug 是否仍在去重窗口内
func (l Ledger) Seen(slug string, now time.Time, window time.Duration) bool {
	ts, ok := l[slug]
	if !ok {
		return false
	}
	return now.Sub(time.Unix(ts, 0)) < window
}

// Touch 记录本次计数时间
func (l Ledger) Touch(slug string, now time.Time) {
	l[slug] = now.Unix()
}

// Prune 先剔除窗口外的条目，仍超过容量时按最近触达保留 maxEntries 条
func (l Ledger) Prune(now time.Time, window time.Duration, maxEntries int) {
	for slug, ts := range l {
		if now.Sub(time.Unix(ts, 0)) >= window {
			delete(l, slug)
		}
	}

	if len(l) <= maxEntries {
		return
	}

	type entry struct {
		slug string
		ts   int64
	}
	entries := make([]entry, 0, len(l))
	for slug, ts := range l {
		entries = append(entries, entry{slug, ts})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ts > entries[j].ts
	})

	for _, e := range entries[maxEntries:] {
		delete(l, e.slug)
	}
}
