package api

import (
	"context"

	"github.com/digestlab/ai-digest/app/mcp"
)

type RequestHandlerInterface interface {
	HandleRequest(ctx context.Context, req *mcp.Request) *mcp.Response
}

var _ RequestHandlerInterface = (*mcp.Server)(nil)

type Handler struct {
	server  RequestHandlerInterface
	version string
}
