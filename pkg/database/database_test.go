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

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestBuildMySQLDSN(t *testing.T) {
	assert.Equal(t,
		"root:pw@tcp(db:3306)/console?charset=utf8mb4&parseTime=True&loc=Local",
		buildMySQLDSN("root", "pw", "db", "", "console"))
}

func TestBuildReplicaDialectors(t *testing.T) {
	d, err := buildReplicaDialectors(nil)
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = buildReplicaDialectors([]ReplicaConfig{{Host: "r1", User: "ro", DBName: "console"}})
	require.NoError(t, err)
	assert.Len(t, d, 1)

	_, err = buildReplicaDialectors([]ReplicaConfig{{Host: "r1"}})
	assert.Error(t, err)
}

func TestDatabase_Enabled(t *testing.T) {
	assert.False(t, Database{}.Enabled())
	assert.True(t, Database{MySQL: MySQLConfig{Host: "db", DBName: "console"}}.Enabled())

	_, err := NewDatabase(Database{})
	assert.ErrorIs(t, err, ErrDisabled)

	db, cleanup, err := ProvideDatabase(Database{})
	require.NoError(t, err)
	defer cleanup()
	assert.Nil(t, db.Database())
}

func TestGormConfig_Naming(t *testing.T) {
	cfg := GormConfig(false)
	ns, ok := cfg.NamingStrategy.(schema.NamingStrategy)
	require.True(t, ok)
	assert.Equal(t, "t_menu", ns.TableName("Menu"))
	assert.NotNil(t, GormConfig(true).Logger)
}

func TestGetConnDurations(t *testing.T) {
	assert.Equal(t, int64(300), int64(GetConnMaxLifetime(0).Seconds()))
	assert.Equal(t, int64(10), int64(GetConnMaxIdleTime(10).Seconds()))
}
