package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hazyhaar/fuzzmask/pkg/kit"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
	"github.com/mark3labs/mcp-go/mcp"
)

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func callTool(t *testing.T, ep kit.Endpoint, decode func(mcp.CallToolRequest) (*kit.MCPDecodeResult, error), args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	res, err := kit.MCPToolHandler(ep, decode)(context.Background(), toolRequest(args))
	if err != nil {
		t.Fatalf("tool handler: %v", err)
	}
	var text string
	if len(res.Content) > 0 {
		if tc, ok := res.Content[0].(mcp.TextContent); ok {
			text = tc.Text
		}
	}
	return res, text
}

func TestMCP_CensorText(t *testing.T) {
	eps := newEndpoints(policy.NewStore(""), quietLogger())
	res, text := callTool(t, eps.censor, decodeCensor, map[string]any{"text": "1234567890", "spaced": true})
	if res.IsError {
		t.Fatalf("tool error: %s", text)
	}
	var got censorResponse
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", text, err)
	}
	if got.Censored != "1234* *****" {
		t.Errorf("Censored = %q, want 1234* *****", got.Censored)
	}
}

func TestMCP_SamePhoneNumbers(t *testing.T) {
	eps := newEndpoints(policy.NewStore(""), quietLogger())
	_, text := callTool(t, eps.samePhone, decodeSamePhone, map[string]any{"a": "0038763111222", "b": "063111222"})
	var got samePhoneResponse
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", text, err)
	}
	if !got.Same {
		t.Error("Same = false, want true")
	}
}

func TestMCP_TransliterateMissingText(t *testing.T) {
	eps := newEndpoints(policy.NewStore(""), quietLogger())
	res, _ := callTool(t, eps.transliterate, decodeTransliterate, map[string]any{})
	if !res.IsError {
		t.Error("expected tool error for missing text")
	}
}

func TestDecodeRank(t *testing.T) {
	decoded, err := decodeRank(toolRequest(map[string]any{
		"query":      "cacak",
		"candidates": "Čačak, Beograd ,, Niš",
		"min_score":  0.4,
		"limit":      float64(2),
		"normalize":  "lowercase_ascii",
	}))
	if err != nil {
		t.Fatalf("decodeRank: %v", err)
	}
	req := decoded.Request.(*rankReq)
	if len(req.Candidates) != 3 {
		t.Fatalf("candidates = %v, want 3 trimmed entries", req.Candidates)
	}
	if req.Candidates[1] != "Beograd" {
		t.Errorf("candidates[1] = %q, want Beograd", req.Candidates[1])
	}
	if req.Opts.MinScore != 0.4 || req.Opts.Limit != 2 || req.Opts.Normalize != "lowercase_ascii" {
		t.Errorf("opts = %+v", req.Opts)
	}
}

func TestMCP_RankEmpty(t *testing.T) {
	eps := newEndpoints(policy.NewStore(""), quietLogger())
	res, text := callTool(t, eps.rank, decodeRank, map[string]any{"query": "x", "candidates": " , "})
	if !res.IsError {
		t.Errorf("expected tool error, got %s", text)
	}
}

func TestMCP_TextTooLong(t *testing.T) {
	eps := newEndpoints(policy.NewStore(""), quietLogger())
	long := strings.Repeat("a", maxTextRunes+1)

	res, text := callTool(t, eps.similarity, decodeSimilarity, map[string]any{"source": long, "target": "a"})
	if !res.IsError {
		t.Errorf("similarity: expected tool error, got %s", text)
	}
	res, text = callTool(t, eps.rank, decodeRank, map[string]any{"query": "a", "candidates": "b, " + long})
	if !res.IsError {
		t.Errorf("rank: expected tool error, got %s", text)
	}
}
