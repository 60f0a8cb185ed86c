package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

func New(logger *slog.Logger, blogManager *blog.Manager) *zenrpc.Server {

	rpcService := NewBlogService(blogManager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-portal", nil))

	return rpcServer
}
