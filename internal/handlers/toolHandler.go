package handlers

import (
	"context"
	"sync"

	"github.com/akolanti/pdfreader/internal/adapter"
	"github.com/akolanti/pdfreader/internal/api"
	"github.com/akolanti/pdfreader/internal/config"
	"github.com/akolanti/pdfreader/internal/extract"
	"github.com/akolanti/pdfreader/internal/metrics"
	"github.com/akolanti/pdfreader/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"
)

var (
	handlerInstance *ToolHandler //private singleton
	once            sync.Once
	logTH           *logger_i.Logger

	limiter = rate.NewLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)
)

type ToolHandler struct {
	service *extract.Service
}

func InitToolHandler(service *extract.Service) {
	once.Do(func() {
		handlerInstance = &ToolHandler{service: service}

		logTH = logger_i.NewLogger("ToolHandler")
		logTH.Info("Starting tool handler")
	})
}

// RegisterTools attaches the extraction tools to the MCP server.
func RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "read_pdf",
		Description: "Read a document into text, page by page. Supports password-protected " +
			"and unprotected PDFs, plus .docx, .txt and .rtf files (read as a single page). " +
			"file_path must be an absolute path.",
	}, ReadDocument)
}

// ReadDocument handles one read_pdf invocation. Domain failures come back as
// structured results with success=false, never as protocol errors.
func ReadDocument(ctx context.Context, req *mcp.CallToolRequest, input api.ReadRequest) (*mcp.CallToolResult, any, error) {
	if handlerInstance == nil {
		return nil, adapter.Rejected("service is not initialized"), nil
	}
	logTH.Info("New read request", "file", input.FilePath, "pages", input.Pages)

	if input.FilePath == "" {
		return nil, adapter.Rejected("file_path is required"), nil
	}
	if !limiter.Allow() {
		metrics.IncrementRateLimited()
		logTH.Warn("Rate limit exceeded", "file", input.FilePath)
		return nil, adapter.Rejected("rate limit exceeded, retry shortly"), nil
	}

	ex := handlerInstance.service.Extract(ctx, extract.Request{
		FilePath: input.FilePath,
		Password: input.Password,
		Pages:    input.Pages,
	})
	return nil, adapter.ToReadResult(ex), nil
}
