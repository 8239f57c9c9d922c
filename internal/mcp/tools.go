// ABOUTME: MCP tool definitions and handlers for the persisted collections
// ABOUTME: Lists records of a source by period and reports the word frequencies behind the word cloud

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/newsroom/internal/content"
	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/present"
	"github.com/harper/newsroom/internal/wordcloud"
)

const defaultWordLimit = 20

type ListRecordsInput struct {
	Source string  `json:"source"`
	Period *string `json:"period,omitempty"`
	Limit  *int    `json:"limit,omitempty"`
}

type RecordOutput struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published,omitempty"`
	Author    string `json:"author,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type ListRecordsOutput struct {
	Source  string         `json:"source"`
	Period  string         `json:"period"`
	Records []RecordOutput `json:"records"`
	Count   int            `json:"count"`
	Skipped []string       `json:"skipped,omitempty"`
}

type WordFrequenciesInput struct {
	Limit *int `json:"limit,omitempty"`
}

type WordFrequencyOutput struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type WordFrequenciesOutput struct {
	Words      []WordFrequencyOutput `json:"words"`
	Count      int                   `json:"count"`
	TotalWords int                   `json:"total_words"`
	Skipped    []string              `json:"skipped,omitempty"`
}

func (s *Server) registerTools() {
	s.registerListRecordsTool()
	s.registerWordFrequenciesTool()
}

func (s *Server) registerListRecordsTool() {
	tool := mcp.Tool{
		Name:        "list_records",
		Description: "List the records of a persisted collection, in feed order. Choose the news articles or the press releases, and optionally only the records published today or before today. Summaries are converted from HTML to Markdown.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"enum":        []string{models.SourceNews, models.SourcePress},
					"description": "Which collection to read. Example: 'news'",
				},
				"period": map[string]interface{}{
					"type":        "string",
					"enum":        []string{string(present.PeriodAll), string(present.PeriodToday), string(present.PeriodPrevious)},
					"description": "Restrict to records published today or before today. Defaults to 'all'. Example: 'today'",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of records to return. If omitted, returns all matching records. Example: 10",
				},
			},
			Required: []string{"source"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListRecords)
}

func (s *Server) registerWordFrequenciesTool() {
	tool := mcp.Tool{
		Name:        "word_frequencies",
		Description: "Count the most frequent words across all news summaries, after dropping stopwords and numbers. These are the words the word cloud is drawn from.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Number of words to return (default: 20). Example: 50",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleWordFrequencies)
}

func (s *Server) handleListRecords(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListRecordsInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	source, err := s.source(input.Source)
	if err != nil {
		return nil, err
	}

	period := present.PeriodAll
	if input.Period != nil {
		p, ok := present.ParsePeriod(*input.Period)
		if !ok {
			return nil, fmt.Errorf("invalid period %q (want all, today or previous)", *input.Period)
		}
		period = p
	}
	if input.Limit != nil && *input.Limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative, got %d", *input.Limit)
	}

	records, err := s.store.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s collection: %w", source.Name, err)
	}

	selected, skipped := present.Select(records, s.now(), period)
	if input.Limit != nil && *input.Limit < len(selected) {
		selected = selected[:*input.Limit]
	}

	output := ListRecordsOutput{
		Source:  source.Name,
		Period:  string(period),
		Records: make([]RecordOutput, 0, len(selected)),
		Skipped: skippedMessages(skipped),
	}
	for _, record := range selected {
		output.Records = append(output.Records, toRecordOutput(record))
	}
	output.Count = len(output.Records)

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleWordFrequencies(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input WordFrequenciesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	limit := defaultWordLimit
	if input.Limit != nil {
		if *input.Limit <= 0 {
			return nil, fmt.Errorf("limit must be positive, got %d", *input.Limit)
		}
		limit = *input.Limit
	}

	news, err := s.source(models.SourceNews)
	if err != nil {
		return nil, err
	}
	records, err := s.store.Load(news)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s collection: %w", news.Name, err)
	}

	text, skipped := present.WordCloudText(records)
	counts := wordcloud.Frequencies(text, wordcloud.DefaultStopwords())

	output := WordFrequenciesOutput{
		TotalWords: len(counts),
		Skipped:    skippedMessages(skipped),
	}
	if len(counts) > limit {
		counts = counts[:limit]
	}
	output.Words = make([]WordFrequencyOutput, 0, len(counts))
	for _, wc := range counts {
		output.Words = append(output.Words, WordFrequencyOutput{Word: wc.Word, Count: wc.Count})
	}
	output.Count = len(output.Words)

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func toRecordOutput(record models.Record) RecordOutput {
	card := present.Render(record)
	summary := card.Summary
	if content.IsHTML(summary) {
		summary = content.ToMarkdown(summary)
	}
	return RecordOutput{
		Title:     card.Title,
		Link:      card.Link,
		Published: card.Published,
		Author:    card.Author,
		Summary:   summary,
	}
}

// skippedMessages flattens a joined per-record error into one message per record
func skippedMessages(err error) []string {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var msgs []string
	for _, e := range joined.Unwrap() {
		var recErr *present.RecordError
		if errors.As(e, &recErr) {
			msgs = append(msgs, recErr.Error())
		}
	}
	return msgs
}
