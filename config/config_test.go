package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, `
app:
  name: Learnhub
  debug: true
server:
  http: 9000
  websocket: 9001
database:
  driver: postgres
  host: db
  port: 5432
  username: u
  password: p
  database: learnhub
notify:
  workers: 4
  push_timeout: 500
`)

	conf := New(path)

	assert.Equal(t, "Learnhub", conf.App.Name)
	assert.True(t, conf.Debug())
	assert.Equal(t, 9000, conf.Server.Http)
	assert.Equal(t, 9001, conf.Server.Websocket)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=learnhub sslmode=disable TimeZone=UTC", conf.Database.Dsn())
	assert.Equal(t, 4, conf.Notify.GetWorkers())
	assert.Equal(t, 500*time.Millisecond, conf.Notify.GetPushTimeout())
}

func TestNew_Defaults(t *testing.T) {
	conf := New(writeConfig(t, "app:\n  name: Learnhub\n"))

	require.NotNil(t, conf.Redis)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 8081, conf.Server.Websocket)
	assert.Equal(t, DriverSqlite, conf.Database.Driver)
	assert.Equal(t, "learnhub.db", conf.Database.Dsn())

	assert.Equal(t, 16, conf.Notify.GetWorkers())
	assert.Equal(t, 8, conf.Notify.GetPersistWorkers())
	assert.Equal(t, "notify", conf.Notify.GetTopicPrefix())
	assert.Equal(t, 120, conf.Notify.GetExcerptLen())
	assert.Equal(t, 10*time.Second, conf.Notify.GetEmailTimeout())
	assert.Equal(t, 2*time.Hour, conf.Jwt.GetExpire())
	assert.Equal(t, 256, conf.Quiz.GetCacheSize())
	assert.Equal(t, time.Minute, conf.Quiz.GetCacheTTL())
	assert.Equal(t, 1024, conf.Queue.GetBuffer())
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SENDGRID_API_KEY", "SG.key")

	conf := New(writeConfig(t, "jwt:\n  secret: from-file\n"))

	assert.Equal(t, "from-env", conf.Jwt.Secret)
	assert.Equal(t, "SG.key", conf.Mail.ApiKey)
}

func TestNew_InvalidFile(t *testing.T) {
	assert.Panics(t, func() { New(filepath.Join(t.TempDir(), "missing.yaml")) })
	assert.Panics(t, func() { New(writeConfig(t, "app: [")) })
}

func TestDatabase_Dsn_Mysql(t *testing.T) {
	d := &Database{Driver: DriverMysql, Host: "127.0.0.1", Port: 3306, Username: "root", Password: "root", Database: "learnhub"}
	assert.Equal(t, "root:root@tcp(127.0.0.1:3306)/learnhub?charset=utf8mb4&parseTime=True&loc=Local", d.Dsn())
}
