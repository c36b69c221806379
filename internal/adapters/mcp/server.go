// Package mcp exposes the document renderer as Model Context Protocol
// tools and resources.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/mermaidkit"
	"github.com/aretw0/mermaidkit/internal/document"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// KindsURI names the resource listing the supported kinds.
const KindsURI = "mermaid://kinds"

// RenderResponse is the structured result of render_diagram.
type RenderResponse struct {
	Kind    string   `json:"kind" jsonschema_description:"The kind declared by the document"`
	Diagram string   `json:"diagram" jsonschema_description:"Mermaid text for every statement that was accepted"`
	Errors  []string `json:"errors,omitempty" jsonschema_description:"Statements that were rejected, with their document path"`
}

// KindsResponse lists the diagram kinds.
type KindsResponse struct {
	Builders  []mermaidkit.Kind `json:"builders"`
	Documents []mermaidkit.Kind `json:"documents"`
}

// Server exposes diagram rendering as an MCP server.
type Server struct {
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("mermaidkit-mcp", strings.TrimSpace(mermaidkit.Version)),
		logger:    logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_diagram",
		mcp.WithDescription("Render a diagram document (YAML, TOML or JSON) to Mermaid text. Rejected statements are listed in errors."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The diagram document")),
		mcp.WithString("format", mcp.Description("yaml (default), toml or json")),
		mcp.WithOutputSchema[RenderResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))

	kindsTool := mcp.NewTool("list_kinds",
		mcp.WithDescription("List the diagram kinds available to builders and to documents."),
		mcp.WithOutputSchema[KindsResponse](),
	)
	s.mcpServer.AddTool(kindsTool, mcp.NewStructuredToolHandler(s.handleKinds))
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RenderResponse, error) {
	src, _ := args["document"].(string)
	name, _ := args["format"].(string)

	format, err := document.ParseFormat(name)
	if err != nil {
		return RenderResponse{}, err
	}
	doc, err := document.Load([]byte(src), format)
	if err != nil {
		return RenderResponse{}, fmt.Errorf("render failed: %w", err)
	}

	out, err := document.Build(doc)
	if errors.Is(err, document.ErrDecode) || errors.Is(err, document.ErrUnsupportedKind) {
		return RenderResponse{}, fmt.Errorf("render failed: %w", err)
	}

	resp := RenderResponse{Kind: doc.Kind, Diagram: out}
	for _, e := range document.Errors(err) {
		resp.Errors = append(resp.Errors, e.Error())
	}
	if len(resp.Errors) > 0 {
		s.logger.Debug("MCP render: statements rejected", "kind", doc.Kind, "count", len(resp.Errors))
	}
	return resp, nil
}

func (s *Server) handleKinds(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (KindsResponse, error) {
	return kinds(), nil
}

func kinds() KindsResponse {
	return KindsResponse{Builders: mermaidkit.Kinds(), Documents: document.Kinds()}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(KindsURI, "Diagram Kinds",
		mcp.WithMIMEType("application/json"),
	), s.readKinds)
}

func (s *Server) readKinds(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(kinds())
	if err != nil {
		return nil, fmt.Errorf("failed to encode kinds: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      KindsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
