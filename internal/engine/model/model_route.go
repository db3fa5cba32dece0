// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"encoding/json"
	"maps"
	"math"
	"strconv"
)

// Well-known meta keys read by menu assembly. Any other key is carried through untouched.
const (
	MetaTitle      = "title"
	MetaIcon       = "icon"
	MetaRank       = "rank"
	MetaShowLink   = "showLink"
	MetaShowParent = "showParent"
	MetaBackstage  = "backstage"
	MetaKeepAlive  = "keepAlive"
	MetaRoles      = "roles"
	MetaAuths      = "auths"
	MetaFixedTag   = "fixedTag"
)

// Meta is the open display metadata of a route.
type Meta map[string]any

// RouteNode is one navigation entry of the route/menu tree.
type RouteNode struct {
	Path              string       `json:"path"`
	Name              string       `json:"name,omitempty"`
	Redirect          string       `json:"redirect,omitempty"`
	Component         string       `json:"component,omitempty"`
	Meta              Meta         `json:"meta,omitempty"`
	Children          []*RouteNode `json:"children,omitempty"`
	NoShowingChildren bool         `json:"noShowingChildren,omitempty"`
}

// Clone deep-copies the node and its subtree.
func (n *RouteNode) Clone() *RouteNode {
	if n == nil {
		return nil
	}
	c := *n
	c.Meta = n.Meta.Clone()
	c.Children = CloneRoutes(n.Children)
	return &c
}

// HasChildren reports whether the node has at least one child.
func (n *RouteNode) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// CloneRoutes deep-copies a forest. A nil forest stays nil.
func CloneRoutes(routes []*RouteNode) []*RouteNode {
	if routes == nil {
		return nil
	}
	out := make([]*RouteNode, 0, len(routes))
	for _, r := range routes {
		if r == nil {
			continue
		}
		out = append(out, r.Clone())
	}
	return out
}

// Clone returns a shallow copy of the map; nested values are shared.
func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Rank returns the ordering key and whether one is set.
func (m Meta) Rank() (int, bool) {
	v, ok := m[MetaRank]
	if !ok || v == nil {
		return 0, false
	}
	switch r := v.(type) {
	case int:
		return r, true
	case int32:
		return int(r), true
	case int64:
		return int(r), true
	case uint:
		return int(r), true
	case float32:
		return floatRank(float64(r))
	case float64:
		return floatRank(r)
	case json.Number:
		if i, err := r.Int64(); err == nil {
			return int(i), true
		}
		if f, err := r.Float64(); err == nil {
			return floatRank(f)
		}
	case string:
		if i, err := strconv.Atoi(r); err == nil {
			return i, true
		}
	}
	return 0, false
}

func floatRank(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// ShowLink returns the visibility flag and whether it was set explicitly.
func (m Meta) ShowLink() (value bool, set bool) {
	return m.boolean(MetaShowLink)
}

// Hidden reports whether showLink is explicitly false.
func (m Meta) Hidden() bool {
	v, set := m.ShowLink()
	return set && !v
}

func (m Meta) Title() string {
	return m.String(MetaTitle)
}

func (m Meta) Icon() string {
	return m.String(MetaIcon)
}

// Roles returns the roles a node requires. Empty means no requirement.
func (m Meta) Roles() []string {
	return m.strings(MetaRoles)
}

// Flag returns a boolean meta value, false when absent.
func (m Meta) Flag(key string) bool {
	v, _ := m.boolean(key)
	return v
}

// String returns a string meta value, empty when absent or not a string.
func (m Meta) String(key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func (m Meta) boolean(key string) (bool, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		return false, false
	}
	return b, true
}

func (m Meta) strings(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}
