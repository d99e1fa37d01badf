package api

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hazyhaar/fuzzmask/pkg/fuzzy"
	"github.com/hazyhaar/fuzzmask/pkg/kit"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the fuzzmask MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, store *policy.Store, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	eps := newEndpoints(store, logger)

	kit.RegisterMCPTool(srv, mcp.NewTool("transliterate",
		mcp.WithDescription("Replace Č, Ć, Š, Ž, Đ (and lowercase) with their ASCII forms. Other characters are unchanged."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to transliterate")),
	), eps.transliterate, decodeTransliterate)

	kit.RegisterMCPTool(srv, mcp.NewTool("similarity",
		mcp.WithDescription("Levenshtein distance and similarity ratio (0..1, 1 = identical) between two strings."),
		mcp.WithString("source", mcp.Required(), mcp.Description("First string")),
		mcp.WithString("target", mcp.Required(), mcp.Description("Second string")),
		mcp.WithString("normalize", mcp.Description("Fold both strings first: translit, lowercase_translit, lowercase_ascii or none (default)")),
	), eps.similarity, decodeSimilarity)

	kit.RegisterMCPTool(srv, mcp.NewTool("censor_text",
		mcp.WithDescription("Mask all but the first few characters of a string. Short strings become *****."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to censor")),
		mcp.WithBoolean("spaced", mcp.Description("Separate the visible prefix from the mask with a space")),
	), eps.censor, decodeCensor)

	kit.RegisterMCPTool(srv, mcp.NewTool("phone_check",
		mcp.WithDescription("Validate a phone number shape and return its censored and international censored forms."),
		mcp.WithString("number", mcp.Required(), mcp.Description("Phone number")),
	), eps.phone, decodePhone)

	kit.RegisterMCPTool(srv, mcp.NewTool("same_phone_numbers",
		mcp.WithDescription("Report whether two phone numbers end with the same subscriber digits, ignoring country or landline prefixes."),
		mcp.WithString("a", mcp.Required(), mcp.Description("First phone number")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second phone number")),
	), eps.samePhone, decodeSamePhone)

	kit.RegisterMCPTool(srv, mcp.NewTool("rank_candidates",
		mcp.WithDescription("Rank up to 100 candidate strings by similarity to a query."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The string to match")),
		mcp.WithString("candidates", mcp.Required(), mcp.Description("Comma-separated candidates")),
		mcp.WithNumber("min_score", mcp.Description("Drop candidates scoring below this (0..1)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results")),
		mcp.WithString("normalize", mcp.Description("translit (default), lowercase_translit, lowercase_ascii or none")),
	), eps.rank, decodeRank)
}

func decodeTransliterate(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	text, err := requiredString(req.GetArguments(), "text")
	if err != nil {
		return nil, err
	}
	return &kit.MCPDecodeResult{Request: &transliterateReq{Text: text}}, nil
}

func decodeSimilarity(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	source, _ := args["source"].(string)
	target, _ := args["target"].(string)
	normalize, _ := args["normalize"].(string)
	return &kit.MCPDecodeResult{Request: &similarityReq{Source: source, Target: target, Normalize: normalize}}, nil
}

func decodeCensor(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	spaced, _ := args["spaced"].(bool)
	return &kit.MCPDecodeResult{Request: &censorReq{Text: text, Spaced: spaced}}, nil
}

func decodePhone(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	number, _ := req.GetArguments()["number"].(string)
	return &kit.MCPDecodeResult{Request: &phoneReq{Number: number}}, nil
}

func decodeSamePhone(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	a, _ := args["a"].(string)
	b, _ := args["b"].(string)
	return &kit.MCPDecodeResult{Request: &samePhoneReq{A: a, B: b}}, nil
}

func decodeRank(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	args := req.GetArguments()
	query, err := requiredString(args, "query")
	if err != nil {
		return nil, err
	}
	raw, _ := args["candidates"].(string)
	var candidates []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	opts := fuzzy.RankOptions{}
	// JSON numbers arrive as float64.
	if v, ok := args["min_score"].(float64); ok {
		opts.MinScore = v
	}
	if v, ok := args["limit"].(float64); ok {
		opts.Limit = int(v)
	}
	opts.Normalize, _ = args["normalize"].(string)
	return &kit.MCPDecodeResult{Request: &rankReq{Query: query, Candidates: candidates, Opts: opts}}, nil
}

func requiredString(args map[string]any, key string) (string, error) {
	v, _ := args[key].(string)
	if v == "" {
		return "", fmt.Errorf("missing %s", key)
	}
	return v, nil
}
