package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/digestlab/ai-digest/app/digest"
)

// Tool handlers. Arguments may be absent entirely; every parameter falls
// back to its documented default.

func (s *Server) handleGetAINews(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		TodayOnly *bool  `json:"today_only"`
		MaxItems  *int   `json:"max_items"`
		Source    string `json:"source"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	todayOnly := true
	if args.TodayOnly != nil {
		todayOnly = *args.TodayOnly
	}
	maxItems := digest.DefaultNewsLimit
	if args.MaxItems != nil {
		maxItems = *args.MaxItems
	}

	return s.listResult(id, s.service.News(ctx, todayOnly, maxItems, args.Source))
}

func (s *Server) handleGetAIPodcasts(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		MaxItems *int `json:"max_items"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	maxItems := digest.DefaultPodcastLimit
	if args.MaxItems != nil {
		maxItems = *args.MaxItems
	}

	return s.listResult(id, s.service.Podcasts(ctx, maxItems))
}

func (s *Server) handleCheckNewAIPubs(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		TodayOnly *bool `json:"today_only"`
		MaxItems  *int  `json:"max_items"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	todayOnly := true
	if args.TodayOnly != nil {
		todayOnly = *args.TodayOnly
	}
	maxItems := digest.DefaultPublicationLimit
	if args.MaxItems != nil {
		maxItems = *args.MaxItems
	}

	return s.listResult(id, s.service.Publications(ctx, todayOnly, maxItems))
}

func (s *Server) handleSuggestCaseStudies(id any, arguments json.RawMessage) *Response {
	var args struct {
		MaxItems *int `json:"max_items"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	maxItems := digest.DefaultCaseStudyLimit
	if args.MaxItems != nil {
		maxItems = *args.MaxItems
	}

	return s.listResult(id, s.service.CaseStudies(maxItems))
}

func (s *Server) handleSuggestProjects(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		MaxProjects *int `json:"max_projects"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	maxProjects := digest.DefaultProjectLimit
	if args.MaxProjects != nil {
		maxProjects = *args.MaxProjects
	}

	return s.listResult(id, s.service.ProjectIdeas(ctx, maxProjects))
}

func (s *Server) handleDailyDigest(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Name string `json:"name"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	return s.textResult(id, s.service.Digest(ctx, args.Name))
}

func (s *Server) handleReadArticle(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		URL string `json:"url"`
	}
	if err := unmarshalArguments(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.URL == "" {
		return s.errorResponse(id, InvalidParams, "url is required")
	}

	article, err := s.extractor.Extract(ctx, args.URL)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to read article: %v", err))
	}

	text := article.Title
	if article.Byline != "" {
		text += "\nBy " + article.Byline
	}
	text += "\n\n" + article.Text

	return s.textResult(id, text)
}

// unmarshalArguments tolerates absent or null argument payloads; the zero
// args struct then supplies every default.
func unmarshalArguments(arguments json.RawMessage, target any) error {
	if len(arguments) == 0 || string(arguments) == "null" {
		return nil
	}
	return json.Unmarshal(arguments, target)
}
