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

package authz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/go-arcade/console/pkg/log"
)

type Mode string

const (
	ModeEnforce  Mode = "enforce"
	ModeShadow   Mode = "shadow"
	ModeDisabled Mode = "disabled"
)

// ActionView is the casbin action checked for menu visibility.
const ActionView = "view"

// Conf authz 配置
type Conf struct {
	Mode       string
	ModelPath  string
	PolicyPath string
}

// ParseMode 解析模式，空值视为 disabled（使用 meta.roles 交集判断）
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.TrimSpace(strings.ToLower(raw))) {
	case "", ModeDisabled:
		return ModeDisabled, nil
	case ModeEnforce:
		return ModeEnforce, nil
	case ModeShadow:
		return ModeShadow, nil
	default:
		return "", errors.New("authz: invalid mode (expected enforce|shadow|disabled)")
	}
}

// Authorizer 基于 casbin 的菜单访问判定
type Authorizer struct {
	enforcer *casbin.Enforcer
	mode     Mode
}

func NewAuthorizer(modelPath string, policyPath string, mode Mode) (*Authorizer, error) {
	if mode == ModeDisabled {
		return &Authorizer{mode: mode}, nil
	}
	adapter := fileadapter.NewAdapter(policyPath)
	enforcer, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load casbin model: %w", err)
	}
	enforcer.SetAdapter(adapter)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load casbin policy: %w", err)
	}
	return &Authorizer{enforcer: enforcer, mode: mode}, nil
}

// NewFromConf 由配置创建 Authorizer
func NewFromConf(conf *Conf) (*Authorizer, error) {
	mode, err := ParseMode(conf.Mode)
	if err != nil {
		return nil, err
	}
	return NewAuthorizer(conf.ModelPath, conf.PolicyPath, mode)
}

func (a *Authorizer) Mode() Mode {
	return a.mode
}

// Authorize 判断 subject 是否可对 object 执行 action。
// shadow 模式下结果只记录，不生效（enforced=false）。
func (a *Authorizer) Authorize(subject, object, action string) (allowed bool, enforced bool, err error) {
	switch a.mode {
	case ModeDisabled:
		return true, false, nil
	case ModeShadow, ModeEnforce:
		ok, err := a.enforcer.Enforce(subject, object, action)
		if err != nil {
			return false, a.mode == ModeEnforce, err
		}
		return ok, a.mode == ModeEnforce, nil
	default:
		return false, false, errors.New("authz: unknown mode")
	}
}

// Allowed 判断持有 held 角色的会话能否看到路径 path 上声明了 required 角色的菜单。
// enforce 模式下任一持有角色被 casbin 允许访问该路径即可见；
// disabled 与 shadow 模式以 required 与 held 的交集为准，shadow 额外记录 casbin 的判定差异。
func (a *Authorizer) Allowed(held []string, path string, required []string) bool {
	byRoles := intersects(required, held)
	if a.mode == ModeDisabled {
		return byRoles
	}
	allowed := false
	for _, role := range held {
		ok, _, err := a.Authorize(role, path, ActionView)
		if err != nil {
			log.Warnw("casbin enforce failed", "role", role, "path", path, "error", err)
			continue
		}
		if ok {
			allowed = true
			break
		}
	}
	if a.mode == ModeShadow {
		if allowed != byRoles {
			log.Infow("authz shadow mismatch", "path", path, "casbin", allowed, "roles", byRoles)
		}
		return byRoles
	}
	return allowed
}

func intersects(required, held []string) bool {
	for _, r := range required {
		for _, h := range held {
			if r == h {
				return true
			}
		}
	}
	return false
}
