// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
	"github.com/patrickmn/go-cache"
)

const (
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates the cache that memoises traversal renderings
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// renderKey identifies one rendering of one tree state. A session's revision
// changes on every insert, so older entries are simply never asked for again.
func renderKey(kind string, revision uint64, order avl.Order) string {
	return fmt.Sprintf("%s:%d:%s", kind, revision, order)
}

func CacheRender(c *cache.Cache, key string, text string) {
	c.Set(key, text, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// renderWithCache returns the traversal of s in the given order, computing it
// only on a cache miss.
func renderWithCache(c *cache.Cache, s kinds.Session, order avl.Order) string {
	key := renderKey(s.Kind(), s.Revision(), order)
	if text, ok := GetRender(c, key); ok {
		return text
	}
	text := s.Render(order)
	CacheRender(c, key, text)
	return text
}
