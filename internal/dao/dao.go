// Package dao 基于 PostgREST 客户端实现 domain 的仓储接口
// Package dao implements the domain repository interfaces over the
// PostgREST client.
package dao

import (
	"github.com/hellodata/notes-web/internal/postgrest"

	"go.uber.org/zap"
)

// Dao 数据访问对象，持有 PostgREST 客户端
type Dao struct {
	client *postgrest.Client
	logger *zap.Logger
}

func NewDao(client *postgrest.Client, logger *zap.Logger) *Dao {
	return &Dao{client: client, logger: logger}
}
