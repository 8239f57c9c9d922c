// ABOUTME: MCP resource providers for newsroom
// ABOUTME: Exposes the news and press collections as read-only JSON resources

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/present"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Count       int       `json:"count"`
	Today       int       `json:"today"`
	ResourceURI string    `json:"resource_uri"`
	Skipped     []string  `json:"skipped,omitempty"`
}

func resourceURI(source string) string {
	return "newsroom://" + source
}

func (s *Server) registerResources() {
	for _, source := range s.sources {
		s.registerCollectionResource(source)
	}
}

func (s *Server) registerCollectionResource(source models.Source) {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         resourceURI(source.Name),
			Name:        source.Title,
			Description: fmt.Sprintf("Every record of the %s collection in feed order, as persisted by the last ingest run", source.Name),
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			text, err := s.readCollection(source)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				&mcp.TextResourceContents{
					URI:      request.Params.URI,
					MIMEType: "application/json",
					Text:     text,
				},
			}, nil
		},
	)
}

func (s *Server) readCollection(source models.Source) (string, error) {
	records, err := s.store.Load(source)
	if err != nil {
		return "", fmt.Errorf("failed to load %s collection: %w", source.Name, err)
	}

	now := s.now()
	today, _, skipped := present.PartitionByDate(records, now)

	outputs := make([]RecordOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, toRecordOutput(record))
	}

	links := map[string]string{}
	for _, other := range s.sources {
		if other.Name != source.Name {
			links[other.Name] = resourceURI(other.Name)
		}
	}

	resourceData := ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   now,
			Count:       len(outputs),
			Today:       len(today),
			ResourceURI: resourceURI(source.Name),
			Skipped:     skippedMessages(skipped),
		},
		Data:  outputs,
		Links: links,
	}

	jsonBytes, err := json.MarshalIndent(resourceData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resource data: %w", err)
	}
	return string(jsonBytes), nil
}
