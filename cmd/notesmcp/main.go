package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mudler/LocalNotes/core/notes"
	"github.com/mudler/LocalNotes/core/types"
	"github.com/mudler/LocalNotes/services/tools"
)

// notesmcp exposes the note tools to MCP clients over stdio. It serves the
// same closed tool set as the chat agent, against the same JSON collection.
func main() {
	defaultDir := os.Getenv("LOCALNOTES_STATE_DIR")
	if defaultDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Failed to get current directory: %v", err)
		}
		defaultDir = filepath.Join(cwd, "state")
	}

	stateDir := flag.String("state-dir", defaultDir, "directory holding the notes collection")
	flag.Parse()

	if err := os.MkdirAll(*stateDir, 0755); err != nil {
		log.Fatalf("Failed to create state directory: %v", err)
	}

	store, err := notes.NewStore(filepath.Join(*stateDir, "notes.json"))
	if err != nil {
		log.Fatalf("Failed to open notes store: %v", err)
	}
	service := notes.NewService(store)
	toolbox := tools.New(service)

	server := mcp.NewServer(&mcp.Implementation{Name: "localnotes", Version: "v0.1.0"}, nil)

	// One provenance scope for the lifetime of the MCP session: delete_note
	// only accepts ids that a list or search surfaced earlier in this session.
	state := types.NewRunState(uuid.New().String())

	for _, name := range tools.All {
		tool, ok := toolbox.For(name)
		if !ok {
			continue
		}
		def := tool.Definition()
		schema, err := inputSchema(def)
		if err != nil {
			log.Fatalf("Failed to build schema for %s: %v", name, err)
		}
		mcp.AddTool(server, &mcp.Tool{
			Name:        def.Name.String(),
			Description: def.Description,
			InputSchema: schema,
			Annotations: annotations(def.Name),
		}, callHandler(tool, state))
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	log.Printf("Serving note tools over stdio (state: %s)", *stateDir)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server terminated: %v", err)
	}
}

// inputSchema re-encodes the openai-flavored argument schema into the MCP
// one, so MCP clients see exactly the declarations the chat agent hands the
// model, enum constraints and additionalProperties included.
func inputSchema(def types.ToolDefinition) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(def.ToFunctionDefinition().Parameters)
	if err != nil {
		return nil, err
	}
	schema := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func annotations(name types.ToolName) *mcp.ToolAnnotations {
	switch name {
	case tools.ListNotes, tools.SearchNotes:
		return &mcp.ToolAnnotations{ReadOnlyHint: true}
	case tools.DeleteNote:
		destructive := true
		return &mcp.ToolAnnotations{DestructiveHint: &destructive}
	}
	return nil
}

// callHandler bridges one registry tool into an MCP handler. Results are
// returned as JSON text because list and delete results are arrays and
// booleans, which structured MCP output does not allow at the top level.
func callHandler(tool types.Tool, state *types.RunState) func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		result, err := tool.Run(ctx, state, types.ToolParams(args))
		if err != nil {
			return nil, nil, err
		}

		payload, err := json.Marshal(result)
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		}, nil, nil
	}
}
