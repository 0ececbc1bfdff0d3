package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/digestlab/ai-digest/app/mcp"
	"github.com/gin-gonic/gin"
)

func NewHandler(server RequestHandlerInterface, version string) *Handler {
	return &Handler{
		server:  server,
		version: version,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// PostMCP accepts one JSON-RPC request per call. Notifications are
// acknowledged with 202 and an empty body; a malformed body yields a
// JSON-RPC parse error rather than a plain HTTP error, so MCP clients can
// handle it uniformly.
func (h *Handler) PostMCP(c *gin.Context) {
	var req mcp.Request
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		slog.Debug("Malformed MCP request body", "error", err)
		c.JSON(http.StatusOK, &mcp.Response{
			JSONRPC: "2.0",
			Error: &mcp.ErrorObject{
				Code:    mcp.ParseError,
				Message: "Failed to parse request",
			},
		})
		return
	}

	resp := h.server.HandleRequest(c.Request.Context(), &req)
	if resp == nil {
		c.Status(http.StatusAccepted)
		return
	}

	c.JSON(http.StatusOK, resp)
}
