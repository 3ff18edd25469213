// Package enrich proposes enriched product documents with Gemini. Given the
// document found on a product page, it asks the model to fill in or infer
// schema.org properties and returns the candidate as a document for review.
// The result is a proposal only; nothing is accepted until a reviewer
// approves it field by field.
package enrich

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

const systemPrompt = "You are an expert product data extractor. " +
	"Your task is to extract or infer specific schema.org properties " +
	"for e-commerce products based on the product data provided."

// enrichableProperties are the schema.org Product properties the model is
// asked to fill in or infer when the source document lacks them.
var enrichableProperties = []string{
	"color",
	"keywords",
	"brand",
	"material",
	"category",
	"audience",
}

// Enricher generates enrichment proposals through the Gemini API.
type Enricher struct {
	client *genai.Client
	model  string
}

// Option is a functional option for configuring an Enricher.
type Option func(*Enricher)

// WithModel overrides the Gemini model used for proposals.
func WithModel(model string) Option {
	return func(e *Enricher) {
		e.model = model
	}
}

// New creates an Enricher backed by the Gemini API.
func New(ctx context.Context, apiKey string, opts ...Option) (*Enricher, error) {
	if apiKey == "" {
		return nil, &errors.ConfigError{
			Component: "enrich",
			Message:   "Gemini API key required - set GEMINI_API_KEY",
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	e := &Enricher{
		client: client,
		model:  DefaultModel,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Propose asks the model for an enriched version of original. The returned
// document is the model's full proposal; original is not modified.
func (e *Enricher) Propose(ctx context.Context, original document.Value) (document.Value, error) {
	source, err := original.JSONIndent("", "  ")
	if err != nil {
		return document.Value{}, err
	}

	prompt := buildPrompt(source)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return document.Value{}, errors.WrapFetch("gemini:"+e.model, err)
	}

	proposal, err := ParseProposal(resp.Text())
	if err != nil {
		return document.Value{}, err
	}

	return proposal, nil
}

// ParseProposal decodes a model response into a document. Fenced code
// blocks around the JSON are tolerated since models emit them even when
// asked not to.
func ParseProposal(text string) (document.Value, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	proposal, err := document.Parse([]byte(cleaned))
	if err != nil {
		return document.Value{}, errors.WrapParse("json", "gemini response", err)
	}

	if proposal.Kind() != document.KindObject {
		return document.Value{}, &errors.ParseError{
			Format: "json",
			Source: "gemini response",
			Err:    errors.New("proposal is not a JSON object"),
		}
	}

	return proposal, nil
}

func buildPrompt(source string) string {
	var b strings.Builder
	b.WriteString("Enrich the following schema.org product document.\n\n")
	b.WriteString("Product document:\n")
	b.WriteString(source)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("- Keep every existing property and its value unchanged.\n")
	b.WriteString("- Fill in or infer these properties when missing or incomplete: ")
	b.WriteString(strings.Join(enrichableProperties, ", "))
	b.WriteString(".\n")
	b.WriteString("- If a value cannot be stated or inferred, omit the property.\n")
	b.WriteString("- Respond only with the complete JSON object.\n")
	return b.String()
}
