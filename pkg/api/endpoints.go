// CLAUDE:SUMMARY Transport-agnostic endpoints (transliterate, similarity, censor, phone, rank, policy) shared by HTTP and MCP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/hazyhaar/fuzzmask/pkg/fuzzy"
	"github.com/hazyhaar/fuzzmask/pkg/kit"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
	"github.com/hazyhaar/fuzzmask/pkg/redact"
)

// maxCandidates bounds a single rank request.
const maxCandidates = 100

// maxTextRunes bounds every string that reaches EditDistance, whose matrix
// grows with the product of both lengths.
const maxTextRunes = 1024

// Shared request/response types used by both HTTP and MCP transports.

type transliterateReq struct {
	Text string
}

type transliterateResponse struct {
	Text           string `json:"text"`
	Transliterated string `json:"transliterated"`
}

type similarityReq struct {
	Source    string
	Target    string
	Normalize string
}

type similarityResponse struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Distance   int     `json:"distance"`
	Similarity float64 `json:"similarity"`
}

type censorReq struct {
	Text   string
	Spaced bool
}

type censorResponse struct {
	Censored string `json:"censored"`
}

type phoneReq struct {
	Number string
}

// phoneResponse never echoes the input number.
type phoneResponse struct {
	Valid         bool   `json:"valid"`
	Censored      string `json:"censored"`
	International string `json:"international,omitempty"`
}

type samePhoneReq struct {
	A, B string
}

type samePhoneResponse struct {
	Same         bool `json:"same"`
	SuffixDigits int  `json:"suffix_digits"`
}

type rankReq struct {
	Query      string
	Candidates []string
	Opts       fuzzy.RankOptions
}

type rankResponse struct {
	Query   string            `json:"query"`
	Results []fuzzy.Candidate `json:"results"`
}

type policyResponse struct {
	Source   string          `json:"source"`
	Policies redact.Policies `json:"policies"`
}

var errEmptyCandidates = errors.New("candidates array is empty")

func checkTextLen(field, s string) error {
	if n := utf8.RuneCountInString(s); n > maxTextRunes {
		return fmt.Errorf("%s too long (max %d runes, got %d)", field, maxTextRunes, n)
	}
	return nil
}

// endpoints groups every action, each wrapped with request IDs and logging.
type endpoints struct {
	transliterate kit.Endpoint
	similarity    kit.Endpoint
	censor        kit.Endpoint
	phone         kit.Endpoint
	samePhone     kit.Endpoint
	rank          kit.Endpoint
	policy        kit.Endpoint
}

func newEndpoints(store *policy.Store, logger *slog.Logger) *endpoints {
	wrap := func(action string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.RequestID(), kit.Logging(logger, action))(ep)
	}
	return &endpoints{
		transliterate: wrap("transliterate", transliterateEndpoint()),
		similarity:    wrap("similarity", similarityEndpoint()),
		censor:        wrap("censor_text", censorEndpoint(store)),
		phone:         wrap("phone_check", phoneEndpoint(store)),
		samePhone:     wrap("same_phone_numbers", samePhoneEndpoint(store)),
		rank:          wrap("rank_candidates", rankEndpoint()),
		policy:        wrap("policy", policyEndpoint(store)),
	}
}

func transliterateEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*transliterateReq)
		return transliterateResponse{Text: req.Text, Transliterated: fuzzy.Transliterate(req.Text)}, nil
	}
}

func similarityEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*similarityReq)
		if err := checkTextLen("source", req.Source); err != nil {
			return nil, err
		}
		if err := checkTextLen("target", req.Target); err != nil {
			return nil, err
		}
		normalize := fuzzy.GetNormalizer(req.Normalize)
		if req.Normalize == "" {
			normalize = fuzzy.NormalizeNone
		}
		s, t := normalize(req.Source), normalize(req.Target)
		return similarityResponse{
			Source:     req.Source,
			Target:     req.Target,
			Distance:   fuzzy.EditDistance(s, t),
			Similarity: fuzzy.Similarity(s, t),
		}, nil
	}
}

func censorEndpoint(store *policy.Store) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*censorReq)
		return censorResponse{Censored: store.Current().Censor(req.Text, req.Spaced)}, nil
	}
}

func phoneEndpoint(store *policy.Store) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*phoneReq)
		m := store.Current().Phone
		resp := phoneResponse{
			Valid:    m.IsValid(req.Number),
			Censored: m.Censor(req.Number),
		}
		if resp.Valid {
			resp.International = m.Censor(m.InjectLandline(req.Number))
		}
		return resp, nil
	}
}

func samePhoneEndpoint(store *policy.Store) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*samePhoneReq)
		m := store.Current().Phone
		return samePhoneResponse{Same: m.Same(req.A, req.B), SuffixDigits: m.Policy().SuffixDigits}, nil
	}
}

func rankEndpoint() kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*rankReq)
		if len(req.Candidates) == 0 {
			return nil, errEmptyCandidates
		}
		if len(req.Candidates) > maxCandidates {
			return nil, fmt.Errorf("too many candidates (max %d, got %d)", maxCandidates, len(req.Candidates))
		}
		if err := checkTextLen("query", req.Query); err != nil {
			return nil, err
		}
		for i, c := range req.Candidates {
			if err := checkTextLen(fmt.Sprintf("candidate %d", i), c); err != nil {
				return nil, err
			}
		}
		results, err := fuzzy.RankCandidates(ctx, req.Query, req.Candidates, req.Opts)
		if err != nil {
			return nil, err
		}
		return rankResponse{Query: req.Query, Results: results}, nil
	}
}

func policyEndpoint(store *policy.Store) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		source := store.Path()
		if source == "" {
			source = "defaults"
		}
		return policyResponse{Source: source, Policies: store.Current().Policies}, nil
	}
}
