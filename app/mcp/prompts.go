package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

func allPrompts() []Prompt {
	return []Prompt{
		{
			Name:        "morning_briefing",
			Description: "Compose a personalized morning briefing from the daily digest.",
			Arguments: []PromptArgument{
				{Name: "name", Description: "Name used to personalize the greeting", Required: false},
			},
		},
		{
			Name:        "project_brainstorm",
			Description: "Brainstorm concrete project outlines from today's AI news.",
			Arguments: []PromptArgument{
				{Name: "count", Description: "How many project ideas to develop", Required: false},
			},
		},
	}
}

func (s *Server) handlePromptsList(id any) *Response {
	return s.successResponse(id, map[string]any{"prompts": allPrompts()})
}

func (s *Server) handlePromptsGet(req *Request) *Response {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, InvalidParams, "Invalid parameters: "+err.Error())
	}
	if params.Name == "" {
		return s.errorResponse(req.ID, InvalidParams, "name is required")
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}

	def, ok := findPrompt(params.Name)
	if !ok {
		return s.errorResponse(req.ID, InvalidParams, "Unknown prompt: "+params.Name)
	}

	if missing := missingArguments(def, params.Arguments); len(missing) > 0 {
		return s.errorResponse(req.ID, InvalidParams,
			"Missing required arguments: "+strings.Join(missing, ", "))
	}

	messages := buildPromptMessages(def.Name, params.Arguments)

	return s.successResponse(req.ID, map[string]any{
		"description": def.Description,
		"messages":    messages,
	})
}

func findPrompt(name string) (Prompt, bool) {
	for _, prompt := range allPrompts() {
		if prompt.Name == name {
			return prompt, true
		}
	}
	return Prompt{}, false
}

func missingArguments(def Prompt, args map[string]any) []string {
	var missing []string
	for _, arg := range def.Arguments {
		if !arg.Required {
			continue
		}
		value, ok := args[arg.Name]
		if !ok || value == nil {
			missing = append(missing, arg.Name)
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, arg.Name)
		}
	}
	return missing
}

func buildPromptMessages(name string, args map[string]any) []PromptMessage {
	var text string

	switch name {
	case "morning_briefing":
		text = "Call the daily_digest tool and rewrite the result as a short, friendly morning briefing. " +
			"Lead with the most significant news item and keep each section to two or three sentences."
		if who, _ := args["name"].(string); who != "" {
			text = fmt.Sprintf("Call the daily_digest tool with name %q and rewrite the result as a short, "+
				"friendly morning briefing addressed to %s. Lead with the most significant news item and "+
				"keep each section to two or three sentences.", who, who)
		}
	case "project_brainstorm":
		count := "3"
		switch v := args["count"].(type) {
		case string:
			if v != "" {
				count = v
			}
		case float64:
			count = fmt.Sprintf("%d", int(v))
		}
		text = fmt.Sprintf("Call suggest_projects_from_news with max_projects %s, then expand each "+
			"suggestion into a concrete weekend-sized project outline: goal, suggested stack, and a "+
			"first milestone. Use the related repository as a starting point where one was found.", count)
	}

	return []PromptMessage{{
		Role:    "user",
		Content: PromptContent{Type: "text", Text: text},
	}}
}
