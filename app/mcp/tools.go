package mcp

// allTools returns the tool definitions exposed through tools/list.
func allTools() []Tool {
	return []Tool{
		{
			Name:        "get_ai_news",
			Description: "Fetch AI-related news (default: all published today). Includes summaries if available.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"today_only": map[string]any{
						"type":        "boolean",
						"description": "Only include items published today (UTC). Defaults to true.",
					},
					"max_items": map[string]any{
						"type":        "integer",
						"description": "Maximum number of items to return. Defaults to 20.",
					},
					"source": map[string]any{
						"type":        "string",
						"description": "Restrict to a single news source by registry name (optional).",
					},
				},
			},
		},
		{
			Name:        "get_ai_podcasts",
			Description: "Fetch latest AI podcast episodes with transcripts if available, otherwise summaries.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"max_items": map[string]any{
						"type":        "integer",
						"description": "Maximum number of episodes to return. Defaults to 5.",
					},
				},
			},
		},
		{
			Name:        "check_new_ai_pubs",
			Description: "Check AI research publications (default: today only).",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"today_only": map[string]any{
						"type":        "boolean",
						"description": "Only include publications dated today (UTC). Defaults to true.",
					},
					"max_items": map[string]any{
						"type":        "integer",
						"description": "Maximum number of publications to return. Defaults to 8.",
					},
				},
			},
		},
		{
			Name:        "suggest_case_studies",
			Description: "Suggest case studies to explore (from Hugging Face + KDNuggets).",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"max_items": map[string]any{
						"type":        "integer",
						"description": "Maximum number of links to return. Defaults to 8.",
					},
				},
			},
		},
		{
			Name:        "suggest_projects_from_news",
			Description: "Derive project ideas from today's AI news headlines, each paired with a related GitHub repository.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"max_projects": map[string]any{
						"type":        "integer",
						"description": "Maximum number of project ideas to return. Defaults to 3.",
					},
				},
			},
		},
		{
			Name:        "daily_digest",
			Description: "Full daily update: greeting, AI podcasts, news, publications, and project ideas.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Name used to personalize the greeting (optional).",
					},
				},
			},
		},
		{
			Name:        "read_article",
			Description: "Fetch a URL and extract the readable article text behind it.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url": map[string]any{
						"type":        "string",
						"description": "The article URL to fetch and extract.",
					},
				},
				"required": []string{"url"},
			},
		},
	}
}
