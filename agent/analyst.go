package agent

import (
	"context"
	"fmt"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/date"
	"github.com/etnz/perfindex/docs"
	"github.com/etnz/perfindex/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
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

			The user is here primarily to understand the performance of his investment portfolio:
			how its value, the asset prices and the currency exposure moved over a period of time.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search, for recent market
// news and context around the portfolio's assets.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's portfolio dataset. Its
// function library exposes the performance queries over the loaded portfolio.
func NewAnalyst(p *perfindex.Portfolio) *Expert {

	lib := []Function{coverage(p), performance(p), summary(p)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has access to the user's portfolio dataset and
		can compute its performance: price, currency and total return indices over any date range,
		and descriptive statistics about them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio performance.
				You know how to use the Tools to compute performance indices and statistics
				over the user's portfolio. You are part of a team of experts, yours is
				everything computable from the portfolio dataset. Pardon their approximative
				language and figure out what they meant.

				Use the available tools to get
				  - the assets and the date range the dataset covers
				  - a performance index for one metric over a range
				  - a summary comparing the three metrics over a range
			`}}},
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

// errResponse is a convenience to report a function-call failure to the model.
func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// dateSchema describes a date argument, reusing the CLI documentation about
// the accepted formats.
func dateSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeString,
		Description: description + `
		It uses the YYYY-MM-DD date format:

		` + must(docs.GetTopic("dates")),
	}
}

// parseRange extracts the "from" and "to" arguments of a performance call.
func parseRange(args map[string]any) (date.Range, error) {
	var r date.Range
	for _, arg := range []struct {
		name string
		dst  *date.Date
	}{{"from", &r.From}, {"to", &r.To}} {
		raw, ok := args[arg.name]
		if !ok {
			return r, fmt.Errorf("missing argument %q", arg.name)
		}
		s, ok := raw.(string)
		if !ok {
			return r, fmt.Errorf("argument %q is not a string as expected but %T", arg.name, raw)
		}
		d, err := date.Parse(s)
		if err != nil {
			return r, fmt.Errorf("argument %q must be a valid date, got %q: %w", arg.name, s, err)
		}
		*arg.dst = d
	}
	return r, nil
}

func coverage(p *perfindex.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Coverage",
			Description: `Coverage lists the assets of the portfolio and the date range
			over which performance can be queried.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The asset identifiers and the covered date range.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r := p.Range(perfindex.TotalMetric)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Coverage",
				Response: map[string]any{
					"output": fmt.Sprintf("assets: %v\nqueryable range: %s to %s\nbase currency: %s", p.Assets(), r.From, r.To, p.Base()),
				},
			}
		},
	}
}

func performance(p *perfindex.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Performance",
			Description: `Performance compounds the portfolio's daily returns for one metric into a
			cumulative index over an inclusive date range, seeded at 1 on the first day.

			The metric is one of "price" (asset prices in their own currency), "currency"
			(exchange-rate moves only) or "total" (asset values in the base currency).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"metric": {
						Type:        genai.TypeString,
						Description: `The metric to compound: "price", "currency" or "total".`,
					},
					"from": dateSchema("The first day of the window."),
					"to":   dateSchema("The last day of the window."),
				},
				Required: []string{"metric", "from", "to"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report: the day-by-day compounded index and its statistics.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			raw, _ := args["metric"].(string)
			metric, err := perfindex.ParseMetric(raw)
			if err != nil {
				return errResponse(id, "Performance", err)
			}
			r, err := parseRange(args)
			if err != nil {
				return errResponse(id, "Performance", err)
			}
			report, err := p.NewPerformanceReport(metric, r, 0)
			if err != nil {
				return errResponse(id, "Performance", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Performance",
				Response: map[string]any{
					"output": renderer.PerformanceMarkdown(report),
				},
			}
		},
	}
}

func summary(p *perfindex.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary compares the three performance metrics (price, currency, total)
			over an inclusive date range: final index and statistics for each.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": dateSchema("The first day of the window."),
					"to":   dateSchema("The last day of the window."),
				},
				Required: []string{"from", "to"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table comparing the three metrics over the window.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r, err := parseRange(args)
			if err != nil {
				return errResponse(id, "Summary", err)
			}
			report, err := p.NewSummaryReport(r)
			if err != nil {
				return errResponse(id, "Summary", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Summary",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(report),
				},
			}
		},
	}
}
