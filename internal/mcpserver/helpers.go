package mcpserver

import (
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/xmazu/envdiff/internal/report"
)

// successResult returns doc as the JSON text the CLI prints with -o json.
func successResult(doc any) *mcpsdk.CallToolResult {
	var b strings.Builder
	if err := report.Write(&b, doc); err != nil {
		return errorResult(fmt.Sprintf("encode result: %v", err))
	}
	return textResult(b.String(), false)
}

func errorResult(msg string) *mcpsdk.CallToolResult {
	return textResult("error: "+msg, true)
}

func textResult(text string, isError bool) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isError,
	}
}
