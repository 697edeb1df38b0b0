package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/olgasafonova/notion-cms-mcp-server/cms"
	"github.com/olgasafonova/notion-cms-mcp-server/metrics"
	"github.com/olgasafonova/notion-cms-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *cms.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *cms.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "ListItems":
		register(h, server, tool, spec, h.client.ListItemsMCP)
	case "GetItem":
		register(h, server, tool, spec, h.client.GetItemMCP)
	case "GetIndex":
		register(h, server, tool, spec, h.client.GetIndexMCP)
	case "GetSchema":
		register(h, server, tool, spec, h.client.GetSchemaMCP)
	case "BatchGetItems":
		register(h, server, tool, spec, h.client.BatchGetItemsMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register adds a tool to the MCP server, wrapping the client method with
// panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, wrap(h, spec, method))
}

// wrap builds the instrumented tool handler for method.
func wrap[Args, Result any](
	h *HandlerRegistry,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) mcp.ToolHandlerFor[Args, Result] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (_ *mcp.CallToolResult, result Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		ctx, span := tracing.StartToolSpan(ctx, spec.Name, spec.Category, spec.ReadOnly)
		defer span.End()

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err = method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))
		tracing.Finish(span, err)

		if err != nil {
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "error", err, "status", cms.StatusOf(err))
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	}
}

// recoverPanic recovers from panics in tool handlers and reports them as a tool error.
func (h *HandlerRegistry) recoverPanic(toolName string, err *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if err != nil {
			*err = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	cfg := h.client.Config()
	attrs := []any{"tool", spec.Name, "namespace", cfg.Namespace, "api_path", cfg.APIPath}

	switch a := args.(type) {
	case cms.ListItemsArgs:
		if len(a.Fields) > 0 {
			attrs = append(attrs, "fields", a.Fields)
		}
	case cms.GetItemArgs:
		attrs = append(attrs, "slug", a.Slug)
	case cms.GetIndexArgs:
		attrs = append(attrs, "format", a.Format)
	case cms.GetSchemaArgs:
		// No args to log
	case cms.BatchGetItemsArgs:
		attrs = append(attrs, "slugs", len(a.Slugs))
	}

	switch r := result.(type) {
	case cms.ListItemsResult:
		attrs = append(attrs, "items", r.Count)
	case cms.GetIndexResult:
		attrs = append(attrs, "index_format", string(r.Format), "entries", r.Count)
	case cms.GetSchemaResult:
		attrs = append(attrs, "fields", r.FieldCount)
	case cms.BatchGetItemsResult:
		attrs = append(attrs, "items", r.Count)
	}

	h.logger.Info("Tool executed", attrs...)
}
