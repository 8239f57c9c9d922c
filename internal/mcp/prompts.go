// ABOUTME: MCP prompt templates for newsroom
// ABOUTME: Guides an agent through summarizing today's IARC news and press releases

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.registerDailyBriefingPrompt()
}

func (s *Server) registerDailyBriefingPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "daily-briefing",
			Description: "Summarize today's IARC articles and press releases, then place them against the recurring themes of the news collection",
			Arguments:   []mcp.PromptArgument{},
		},
		s.handleDailyBriefing,
	)
}

func (s *Server) handleDailyBriefing(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `# Daily Briefing

## Overview
Write a short briefing on what the International Agency for Research on Cancer published today.

## Workflow Steps

### Step 1: Today's articles
Call list_records with source "news" and period "today".
- Note each title, link and the key finding of its summary.
- If nothing was published today, say so and use period "previous" with limit 5 instead.

### Step 2: Today's press releases
Call list_records with source "press" and period "today".
- Press releases usually announce monographs, classifications, or events. Lead with them.

### Step 3: Recurring themes
Call word_frequencies with limit 15.
- Name the three or four themes the top words point at.
- Say which of today's items belong to those themes.

### Step 4: Write the briefing
- One paragraph per press release, then one line per article.
- Link every item.
- Mention any records listed under "skipped" so the ingest can be checked.
`

	return &mcp.GetPromptResult{
		Description: "Daily briefing of today's IARC news and press releases",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
