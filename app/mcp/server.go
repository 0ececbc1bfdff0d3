package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/digestlab/ai-digest/app/feed"
	"github.com/digestlab/ai-digest/app/sources"
)

// DigestService is the content aggregation surface the tools route into.
type DigestService interface {
	News(ctx context.Context, todayOnly bool, maxItems int, source string) []string
	Podcasts(ctx context.Context, maxItems int) []string
	Publications(ctx context.Context, todayOnly bool, maxItems int) []string
	CaseStudies(maxItems int) []string
	ProjectIdeas(ctx context.Context, maxProjects int) []string
	Digest(ctx context.Context, name string) string
}

// ArticleReader backs the read_article tool.
type ArticleReader interface {
	Extract(ctx context.Context, url string) (feed.Article, error)
}

// Server dispatches MCP JSON-RPC requests to the digest service. It is
// transport-agnostic: the stdio loop and the HTTP handler both feed into
// HandleRequest.
type Server struct {
	service   DigestService
	extractor ArticleReader
	registry  *sources.Registry
	version   string
}

func NewServer(service DigestService, extractor ArticleReader, registry *sources.Registry, version string) *Server {
	return &Server{
		service:   service,
		extractor: extractor,
		registry:  registry,
		version:   version,
	}
}

// HandleRequest processes one request and returns its response, or nil for
// notifications (requests with a null ID never get a response).
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	var resp *Response

	switch req.Method {
	case "initialize":
		resp = s.handleInitialize(req.ID)
	case "notifications/initialized":
		resp = nil
	case "ping":
		resp = &Response{JSONRPC: "2.0", ID: req.ID, Result: json.RawMessage(`{}`)}
	case "tools/list":
		resp = s.handleToolsList(req.ID)
	case "tools/call":
		resp = s.handleToolsCall(ctx, req)
	case "prompts/list":
		resp = s.handlePromptsList(req.ID)
	case "prompts/get":
		resp = s.handlePromptsGet(req)
	case "resources/list":
		resp = s.handleResourcesList(req.ID)
	case "resources/read":
		resp = s.handleResourcesRead(req)
	default:
		resp = s.errorResponse(req.ID, MethodNotFound, "Method not found: "+req.Method)
	}

	if req.ID == nil {
		return nil
	}
	return resp
}

func (s *Server) handleInitialize(id any) *Response {
	result := map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"prompts":   map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "ai-digest",
			"version": s.version,
		},
	}

	return s.successResponse(id, result)
}

func (s *Server) handleToolsList(id any) *Response {
	return s.successResponse(id, map[string]any{"tools": allTools()})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, InvalidParams, "Invalid parameters: "+err.Error())
	}

	switch params.Name {
	case "get_ai_news":
		return s.handleGetAINews(ctx, req.ID, params.Arguments)
	case "get_ai_podcasts":
		return s.handleGetAIPodcasts(ctx, req.ID, params.Arguments)
	case "check_new_ai_pubs":
		return s.handleCheckNewAIPubs(ctx, req.ID, params.Arguments)
	case "suggest_case_studies":
		return s.handleSuggestCaseStudies(req.ID, params.Arguments)
	case "suggest_projects_from_news":
		return s.handleSuggestProjects(ctx, req.ID, params.Arguments)
	case "daily_digest":
		return s.handleDailyDigest(ctx, req.ID, params.Arguments)
	case "read_article":
		return s.handleReadArticle(ctx, req.ID, params.Arguments)
	default:
		return s.errorResponse(req.ID, InvalidParams, "Unknown tool: "+params.Name)
	}
}

// Helper responses

func (s *Server) successResponse(id any, result any) *Response {
	raw, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err))
	}

	return &Response{JSONRPC: "2.0", ID: id, Result: raw}
}

func (s *Server) errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}

// listResult wraps a list-valued tool result: one text block per element.
func (s *Server) listResult(id any, lines []string) *Response {
	blocks := make([]ContentBlock, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, ContentBlock{Type: "text", Text: line})
	}
	return s.successResponse(id, ToolResult{Content: blocks})
}

// textResult wraps a string-valued tool result: one text block.
func (s *Server) textResult(id any, text string) *Response {
	return s.successResponse(id, ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	})
}
