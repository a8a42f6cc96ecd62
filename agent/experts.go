package agent

import (
	"context"
	"fmt"
	"math"

	"github.com/etnz/forecast"
	"github.com/etnz/forecast/docs"
	"github.com/etnz/forecast/renderer"
	"google.golang.org/genai"
)

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand the long term forecast of their portfolio of properties,
			shares and loans: when will the passive income reach their goal, when are the loans repaid,
			what is the equity going to be.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Never invent figures, always ask the Analyst for them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewEconomist returns an expert grounded on Google Search about rates,
// markets and economic news.
func NewEconomist(model string) *Expert {
	return &Expert{
		Name: "Economist",
		Description: `This is an economist,
		aware of interest rates, property and share markets, inflation and their recent news.
		Ask the Economist whenever you need to challenge the growth rates and interest rates of the forecast.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert economist, you can search and find about anything related to
			interest rates, property markets, share markets and inflation. You Leverage Google Search to
			ground your assertions in a solid truth.
			`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of forecasting the profile p with
// the settings s.
func NewAnalyst(model string, p forecast.Profile, s forecast.Settings) *Expert {
	lib := Functions(p, s)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. They are in charge of the user's profile and its forecast.
		They compute the yearly income, expenses, loan repayments, asset values and equity of the user's portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst in charge of the user's profile and its forecast.
				You know how to use the Tools to extract relevant figures about the forecast.
				You are part of a team of experts, yours is everything about the forecast. They might ask
				you questions about the user's portfolio, pardon their approximative language and figure out what they meant.

				Here is how the forecast is computed:

				` + must(docs.GetTopics("forecast", "loans")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Functions returns the functions of the Analyst on the profile p.
func Functions(p forecast.Profile, s forecast.Settings) []Function {
	results := forecast.Forecast(p, s)
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Forecast",
				Description: "Forecast returns the yearly totals of the portfolio over a range of years.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"from":  {Type: genai.TypeInteger, Description: "The first year, the first forecast year by default."},
						"years": {Type: genai.TypeInteger, Description: "The number of years, all of them by default."},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table with a line per year.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				from, err := intArg(args, "from")
				if err != nil {
					return failure(id, "Forecast", err)
				}
				years, err := intArg(args, "years")
				if err != nil {
					return failure(id, "Forecast", err)
				}
				return success(id, "Forecast", renderer.ForecastMarkdown(p, renderer.Window(results, from, years)))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Year",
				Description: "Year returns the totals of a forecast year and the breakdown of each asset held that year.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"year": {Type: genai.TypeInteger, Description: "The year to detail."},
					},
					Required: []string{"year"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown report of the year.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				year, err := intArg(args, "year")
				if err != nil {
					return failure(id, "Year", err)
				}
				r, ok := forecast.FindYear(results, year)
				if !ok {
					return failure(id, "Year", fmt.Errorf("year %d is outside the forecast %d-%d", year, p.Start(), p.Start()+p.Years()-1))
				}
				return success(id, "Year", renderer.YearMarkdown(p, r))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Summary returns the milestones of the forecast: goal years, debt free year, peak and final equity.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown summary.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return success(id, "Summary", renderer.SummaryMarkdown(renderer.NewSummary(p, forecast.Summarize(results))))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Assets",
				Description: "Assets lists the assets of the profile with their purchase, growth rates and loan terms.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the assets.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return success(id, "Assets", renderer.AssetsMarkdown(p, forecast.Normalize(p.Assets, s)))
			},
		},
	}
}

// intArg reads an optional integer argument, zero when absent.
func intArg(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, n)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}
