// ABOUTME: Tests for MCP tool, resource, and prompt handlers
// ABOUTME: Uses a file store in a temp directory and a fixed reference time

package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/storage"
)

var refTime = time.Date(2024, 10, 17, 12, 0, 0, 0, time.UTC)

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

// marshalToMap converts a struct to map[string]interface{} for test input
func marshalToMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	inputJSON, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal input: %v", err)
	}
	var inputMap map[string]interface{}
	if err := json.Unmarshal(inputJSON, &inputMap); err != nil {
		t.Fatalf("failed to unmarshal to map: %v", err)
	}
	return inputMap
}

func testSources() []models.Source {
	return []models.Source{
		models.NewSource(models.SourceNews, "Latest Articles", "https://example.com/news"),
		models.NewSource(models.SourcePress, "Latest Press Releases", "https://example.com/press"),
	}
}

// setupTestServer persists a small news and press collection and returns a server over them
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	store := storage.NewFileStore(t.TempDir())
	sources := testSources()

	news := models.Collection{
		{
			models.KeyTitle:     "Cancer registries expand",
			models.KeyLink:      "https://example.com/news/1",
			models.KeyPublished: models.FormatPublished(refTime.Add(-time.Hour)),
			models.KeySummary:   "<p>Cancer registries <b>expand</b> in Africa</p>",
			models.KeyAuthor:    "IARC",
		},
		{
			models.KeyTitle:     "Older study",
			models.KeyLink:      "https://example.com/news/2",
			models.KeyPublished: models.FormatPublished(refTime.AddDate(0, 0, -2)),
			models.KeySummary:   "cancer study on tobacco",
		},
		{
			models.KeyTitle:   "Undated",
			models.KeyLink:    "https://example.com/news/3",
			models.KeySummary: "registries",
		},
	}
	press := models.Collection{
		{
			models.KeyTitle:     "Monograph meeting",
			models.KeyLink:      "https://example.com/press/1",
			models.KeyPublished: models.FormatPublished(refTime.AddDate(0, 0, -1)),
			models.KeySummary:   "Monograph volume announced",
		},
	}

	if err := store.Save(sources[0], news); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(sources[1], press); err != nil {
		t.Fatal(err)
	}

	s := NewServer(store, sources)
	s.now = func() time.Time { return refTime }
	return s
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	textContent, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return textContent.Text
}

func TestHandleListRecords(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name    string
		input   ListRecordsInput
		want    []string
		skipped int
	}{
		{
			name:  "all news",
			input: ListRecordsInput{Source: "news"},
			want:  []string{"Cancer registries expand", "Older study", "Undated"},
		},
		{
			name:    "news today",
			input:   ListRecordsInput{Source: "news", Period: strPtr("today")},
			want:    []string{"Cancer registries expand"},
			skipped: 1,
		},
		{
			name:    "news previous",
			input:   ListRecordsInput{Source: "news", Period: strPtr("previous")},
			want:    []string{"Older study"},
			skipped: 1,
		},
		{
			name:  "news limited",
			input: ListRecordsInput{Source: "news", Limit: intPtr(1)},
			want:  []string{"Cancer registries expand"},
		},
		{
			name:  "press previous",
			input: ListRecordsInput{Source: "press", Period: strPtr("previous")},
			want:  []string{"Monograph meeting"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = marshalToMap(t, tt.input)

			result, err := server.handleListRecords(context.Background(), req)
			if err != nil {
				t.Fatalf("handleListRecords failed: %v", err)
			}

			var output ListRecordsOutput
			if err := json.Unmarshal([]byte(resultText(t, result)), &output); err != nil {
				t.Fatalf("failed to parse output: %v", err)
			}

			if output.Count != len(tt.want) {
				t.Fatalf("Count = %d, want %d", output.Count, len(tt.want))
			}
			for i, title := range tt.want {
				if output.Records[i].Title != title {
					t.Errorf("Records[%d].Title = %q, want %q", i, output.Records[i].Title, title)
				}
			}
			if len(output.Skipped) != tt.skipped {
				t.Errorf("len(Skipped) = %d, want %d", len(output.Skipped), tt.skipped)
			}
		})
	}
}

func TestHandleListRecords_SummaryMarkdown(t *testing.T) {
	server := setupTestServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = marshalToMap(t, ListRecordsInput{Source: "news", Limit: intPtr(1)})

	result, err := server.handleListRecords(context.Background(), req)
	if err != nil {
		t.Fatalf("handleListRecords failed: %v", err)
	}

	var output ListRecordsOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	summary := output.Records[0].Summary
	if strings.Contains(summary, "<p>") || !strings.Contains(summary, "**expand**") {
		t.Errorf("expected markdown summary, got %q", summary)
	}
}

func TestHandleListRecords_InvalidInput(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name    string
		input   ListRecordsInput
		wantErr string
	}{
		{"unknown source", ListRecordsInput{Source: "weather"}, `unknown source "weather"`},
		{"bad period", ListRecordsInput{Source: "news", Period: strPtr("tomorrow")}, `invalid period "tomorrow"`},
		{"negative limit", ListRecordsInput{Source: "news", Limit: intPtr(-1)}, "limit must be non-negative, got -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = marshalToMap(t, tt.input)

			result, err := server.handleListRecords(context.Background(), req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if result != nil {
				t.Errorf("expected nil result, got %v", result)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestHandleListRecords_MissingCollection(t *testing.T) {
	server := NewServer(storage.NewFileStore(t.TempDir()), testSources())

	req := mcp.CallToolRequest{}
	req.Params.Arguments = marshalToMap(t, ListRecordsInput{Source: "press"})

	if _, err := server.handleListRecords(context.Background(), req); err == nil {
		t.Error("expected error when the collection file is missing")
	}
}

func TestHandleWordFrequencies(t *testing.T) {
	server := setupTestServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = marshalToMap(t, WordFrequenciesInput{Limit: intPtr(2)})

	result, err := server.handleWordFrequencies(context.Background(), req)
	if err != nil {
		t.Fatalf("handleWordFrequencies failed: %v", err)
	}

	var output WordFrequenciesOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if output.Count != 2 {
		t.Fatalf("Count = %d, want 2", output.Count)
	}
	// "cancer" and "registries" both appear twice; ties sort alphabetically
	if output.Words[0].Word != "cancer" || output.Words[0].Count != 2 {
		t.Errorf("Words[0] = %+v, want cancer x2", output.Words[0])
	}
	if output.Words[1].Word != "registries" || output.Words[1].Count != 2 {
		t.Errorf("Words[1] = %+v, want registries x2", output.Words[1])
	}
	if output.TotalWords <= output.Count {
		t.Errorf("TotalWords = %d, expected more distinct words than the limit", output.TotalWords)
	}
}

func TestHandleWordFrequencies_InvalidLimit(t *testing.T) {
	server := setupTestServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = marshalToMap(t, WordFrequenciesInput{Limit: intPtr(0)})

	if _, err := server.handleWordFrequencies(context.Background(), req); err == nil {
		t.Error("expected error for zero limit")
	}
}

func TestReadCollection(t *testing.T) {
	server := setupTestServer(t)

	text, err := server.readCollection(testSources()[0])
	if err != nil {
		t.Fatalf("readCollection failed: %v", err)
	}

	var data struct {
		Metadata ResourceMetadata  `json:"metadata"`
		Data     []RecordOutput    `json:"data"`
		Links    map[string]string `json:"links"`
	}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		t.Fatalf("failed to parse resource: %v", err)
	}

	if data.Metadata.ResourceURI != "newsroom://news" {
		t.Errorf("ResourceURI = %q", data.Metadata.ResourceURI)
	}
	if data.Metadata.Count != 3 || len(data.Data) != 3 {
		t.Errorf("Count = %d, len(Data) = %d, want 3", data.Metadata.Count, len(data.Data))
	}
	if data.Metadata.Today != 1 {
		t.Errorf("Today = %d, want 1", data.Metadata.Today)
	}
	if len(data.Metadata.Skipped) != 1 {
		t.Errorf("Skipped = %v, want one undated record", data.Metadata.Skipped)
	}
	if data.Links["press"] != "newsroom://press" {
		t.Errorf("Links = %v", data.Links)
	}
}

func TestHandleDailyBriefing(t *testing.T) {
	server := setupTestServer(t)

	result, err := server.handleDailyBriefing(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("handleDailyBriefing failed: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(result.Messages))
	}
	text, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Messages[0].Content)
	}
	for _, tool := range []string{"list_records", "word_frequencies"} {
		if !strings.Contains(text.Text, tool) {
			t.Errorf("prompt does not mention %s", tool)
		}
	}
}
