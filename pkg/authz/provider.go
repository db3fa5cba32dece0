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

import "github.com/google/wire"

// ProviderSet 提供菜单权限判定器
var ProviderSet = wire.NewSet(ProvideAuthorizer)

func ProvideAuthorizer(conf *Conf) (*Authorizer, error) {
	return NewFromConf(conf)
}
