package canned

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"
)

// Client is the Generator used when no provider API key is configured.
// It rotates through a fixed set of plausible answers so the analyze
// endpoint keeps working in development instead of failing outright.
type Client struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewClient() *Client {
	// Dedicated random source to avoid contention
	return &Client{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type answer struct {
	DisposalMethod       string `json:"disposal_method"`
	BinColor             string `json:"bin_color"`
	HandlingInstructions string `json:"handling_instructions"`
	EnvironmentalImpact  string `json:"environmental_impact"`
	SDGConnection        string `json:"sdg_connection"`
}

var answers = []answer{
	{
		DisposalMethod:       "Recycling",
		BinColor:             "Blue",
		HandlingInstructions: "Clean and dry before recycling",
		EnvironmentalImpact:  "Reduces landfill waste and conserves resources",
		SDGConnection:        "SDG 12: Responsible Consumption and Production",
	},
	{
		DisposalMethod:       "Composting",
		BinColor:             "Green",
		HandlingInstructions: "Remove non-compostable packaging first",
		EnvironmentalImpact:  "Reduces methane emissions from landfills",
		SDGConnection:        "SDG 13: Climate Action",
	},
	{
		DisposalMethod:       "Landfill",
		BinColor:             "Black",
		HandlingInstructions: "Dispose in general waste bin",
		EnvironmentalImpact:  "Contributes to landfill growth",
		SDGConnection:        "SDG 11: Sustainable Cities and Communities",
	},
}

func (c *Client) Generate(ctx context.Context, item string) (string, error) {
	c.mu.Lock()
	pick := answers[c.rand.Intn(len(answers))]
	c.mu.Unlock()

	b, err := json.Marshal(pick)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
