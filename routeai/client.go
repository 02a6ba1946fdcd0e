package routeai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Estimator turns an ordered stop list into ordered route segments.
type Estimator interface {
	EstimateRoute(ctx context.Context, startAddress string, stops []TripStop) ([]RouteSegment, error)
}

// OpenAIEstimator asks a chat model for per-leg distances via a forced
// function call. A nil client means no API key was configured.
type OpenAIEstimator struct {
	client *openai.Client
	model  shared.ChatModel
}

func NewOpenAIEstimator() *OpenAIEstimator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return &OpenAIEstimator{client: nil}
	}
	model := shared.ChatModel(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = shared.ChatModelGPT4oMini
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIEstimator{client: &c, model: model}
}

type routeEstimate struct {
	Segments []RouteSegment `json:"segments"`
}

func buildPrompt(startAddress string, stops []TripStop) string {
	var b strings.Builder
	b.WriteString("You are estimating a property manager's driving day.\n")
	fmt.Fprintf(&b, "The day starts at: %s\n", startAddress)
	b.WriteString("Visits in order:\n")
	for i, stop := range stops {
		fmt.Fprintf(&b, "%d. %s at %s\n", i+1, stop.Time, stop.Address)
	}
	b.WriteString(`
Call estimate_route with one segment per leg, in driving order.
Each segment needs a short purpose (e.g. "Inspection - 12 Smith St") and the
driving distance in km for that leg. Skip legs you cannot estimate.`)
	return b.String()
}

func (e *OpenAIEstimator) EstimateRoute(ctx context.Context, startAddress string, stops []TripStop) ([]RouteSegment, error) {

	if e.client == nil {
		return nil, ErrEstimatorUnavailable
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"segments": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"purpose":     map[string]string{"type": "string"},
						"distance_km": map[string]string{"type": "number"},
					},
					"required":             []string{"purpose", "distance_km"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"segments"},
		"additionalProperties": false,
	}

	fn := shared.FunctionDefinitionParam{
		Name:        "estimate_route",
		Description: openai.String("Return ordered route segments with purposes and km distances."),
		Strict:      openai.Bool(true),
		Parameters:  schema,
	}

	req := openai.ChatCompletionNewParams{
		Model: e.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(startAddress, stops)),
		},
		Tools: []openai.ChatCompletionToolParam{{
			Function: fn,
		}},
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{
			OfChatCompletionNamedToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{
					Name: "estimate_route",
				},
			},
		},
	}

	resp, err := e.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return nil, ClassifyProviderError(err)
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("%w: no function call returned", ErrEstimatorUnavailable)
	}

	var out routeEstimate
	if err := json.Unmarshal(
		[]byte(resp.Choices[0].Message.ToolCalls[0].Function.Arguments),
		&out,
	); err != nil {
		return nil, fmt.Errorf("%w: unmarshal segments: %v", ErrEstimatorUnavailable, err)
	}
	return out.Segments, nil
}

// ClassifyProviderError maps provider failures onto our sentinels. Quota is
// recognized from the HTTP status, not message text.
func ClassifyProviderError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return ErrQuotaExceeded
	}
	return fmt.Errorf("%w: %v", ErrEstimatorUnavailable, err)
}
