package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.App.Env)
	assert.Equal(t, 3000, conf.Server.Http)
	assert.Equal(t, 24*time.Hour, conf.Jwt.Expire())
	assert.Equal(t, time.Hour, conf.Mail.ResetExpire())
	assert.NotNil(t, conf.RocketMQ)
}

func TestMySQLDsn(t *testing.T) {
	m := &MySQL{Host: "127.0.0.1", Port: 3306, Username: "root", Password: "pw", Database: "haven"}
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/haven?charset=utf8mb4&parseTime=True&loc=Local", m.Dsn())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("app: [\n"))
	assert.Error(t, err)
}
