package handler

import (
	"Learnhub/dao/cache"
	"Learnhub/pkg/context"
	"Learnhub/pkg/log"
	"Learnhub/pkg/server"
	"Learnhub/pkg/socket"
	"Learnhub/socket/process"
	stdctx "context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PushChannel 通知推送通道, 连接只下发 {type, message}
type PushChannel struct {
	Manager       *socket.Manager
	OnlineStorage *cache.OnlineStorage
	Subscribe     *process.PushSubscribe
}

// Conn 初始化连接
func (ch *PushChannel) Conn(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L.Error("websocket upgrade error", zap.Error(err))
		return nil
	}

	client := socket.NewClient(conn, uid, 16)
	ch.open(client)
	defer ch.close(client)

	client.Run(c.Request.Context())
	return nil
}

func (ch *PushChannel) open(client *socket.Client) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 3*time.Second)
	defer cancel()

	uid := client.Uid()
	if ch.Manager.Add(client) {
		if err := ch.Subscribe.Sync(ctx, uid); err != nil {
			log.L.Error("subscribe user topic error", zap.Uint64("user_id", uid), zap.Error(err))
		}
	}
	if err := ch.OnlineStorage.Bind(ctx, server.GetServerId(), uid); err != nil {
		log.L.Error("bind online error", zap.Uint64("user_id", uid), zap.Error(err))
	}
	log.L.Info("websocket connected", zap.Uint64("user_id", uid), zap.Int64("cid", client.Cid()))
}

func (ch *PushChannel) close(client *socket.Client) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 3*time.Second)
	defer cancel()

	uid := client.Uid()
	if ch.Manager.Remove(client) {
		if err := ch.Subscribe.Sync(ctx, uid); err != nil {
			log.L.Warn("unsubscribe user topic error", zap.Uint64("user_id", uid), zap.Error(err))
		}
	}
	if err := ch.OnlineStorage.UnBind(ctx, server.GetServerId(), uid); err != nil {
		log.L.Warn("unbind online error", zap.Uint64("user_id", uid), zap.Error(err))
	}
	log.L.Info("websocket closed", zap.Uint64("user_id", uid), zap.Int64("cid", client.Cid()))
}
