package mcp

import (
	"encoding/json"
	"fmt"
)

const (
	sourcesResourceURI = "digest://sources"
	aboutResourceURI   = "digest://about"
)

const aboutResourceText = `# ai-digest

An MCP server aggregating AI-related content from a fixed set of syndication
feeds: news posts, podcast episodes, and research publications.

Tools:

- get_ai_news — today's AI news with short summaries
- get_ai_podcasts — latest podcast episodes with transcripts or summaries
- check_new_ai_pubs — today's research publications
- suggest_case_studies — static case-study links
- suggest_projects_from_news — project ideas derived from today's headlines
- daily_digest — the full multi-section morning report
- read_article — readable text extraction for any article URL

Every aggregation re-fetches the configured sources; nothing is cached or
persisted between calls. The source registry is listed under digest://sources.
`

func allResources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         sourcesResourceURI,
			Name:        "Feed Source Registry",
			Description: "The configured feed sources by category, in registry order",
			MimeType:    "application/json",
		},
		{
			URI:         aboutResourceURI,
			Name:        "About ai-digest",
			Description: "Overview of the server and its tools",
			MimeType:    "text/markdown",
		},
	}
}

func (s *Server) handleResourcesList(id any) *Response {
	return s.successResponse(id, map[string]any{"resources": allResources()})
}

func (s *Server) handleResourcesRead(req *Request) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, InvalidParams, "Invalid parameters: "+err.Error())
	}
	if params.URI == "" {
		return s.errorResponse(req.ID, InvalidParams, "uri is required")
	}

	switch params.URI {
	case sourcesResourceURI:
		text, err := s.renderSources()
		if err != nil {
			return s.errorResponse(req.ID, InternalError, fmt.Sprintf("Failed to render sources: %v", err))
		}
		return s.successResponse(req.ID, map[string]any{
			"contents": []ResourceContent{{URI: params.URI, MimeType: "application/json", Text: text}},
		})
	case aboutResourceURI:
		return s.successResponse(req.ID, map[string]any{
			"contents": []ResourceContent{{URI: params.URI, MimeType: "text/markdown", Text: aboutResourceText}},
		})
	default:
		return s.errorResponse(req.ID, InvalidParams, "Unknown resource: "+params.URI)
	}
}

func (s *Server) renderSources() (string, error) {
	type sourceInfo struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		URL      string `json:"url"`
		Enabled  bool   `json:"enabled"`
	}

	all := s.registry.All()
	infos := make([]sourceInfo, 0, len(all))
	for _, src := range all {
		infos = append(infos, sourceInfo{
			Name:     src.Name,
			Category: string(src.Category),
			URL:      src.URL,
			Enabled:  src.Enabled,
		})
	}

	raw, err := json.MarshalIndent(map[string]any{"sources": infos}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
