package process

import (
	"Learnhub/pkg/log"
	"context"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var once sync.Once

type IServer interface {
	Setup(ctx context.Context) error
}

// SubServers 订阅的服务列表
type SubServers struct {
	PushSubscribe *PushSubscribe // 用户频道订阅
}

type Server struct {
	items []IServer
	SubServers
}

func NewServer(servers *SubServers) *Server {
	s := &Server{
		SubServers: *servers,
	}

	s.binds(servers)
	return s
}

func (c *Server) binds(servers *SubServers) {
	elem := reflect.ValueOf(servers).Elem()
	for i := 0; i < elem.NumField(); i++ {
		if v, ok := elem.Field(i).Interface().(IServer); ok {
			c.items = append(c.items, v)
		}
	}
}

// Start 启动服务
func (c *Server) Start(eg *errgroup.Group, ctx context.Context) {
	once.Do(func() {
		for _, process := range c.items {
			serv := process
			eg.Go(func() error {
				if err := serv.Setup(ctx); err != nil {
					log.L.Error("process exited", zap.String("process", reflect.TypeOf(serv).String()), zap.Error(err))
					return err
				}
				return nil
			})
		}
	})
}
