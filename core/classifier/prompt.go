package classifier

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"capcost/core/benchmarks"
)

const classifyTemplate = `You are an expert in software architecture and system sizing.

Analyze the following project description and extract structured information:

PROJECT DESCRIPTION:
%q

AVAILABLE CATEGORIES:
%s

AVAILABLE FEATURES:
%s

Answer ONLY with valid JSON in the following format (no markdown, no explanations, no code fences):
{
  "appType": "best matching category (use the id)",
  "confidence": 0.0 to 1.0,
  "detectedFeatures": ["features explicitly mentioned or clearly required"],
  "suggestedFeatures": ["features not mentioned but probably required"],
  "extractedInfo": {
    "targetAudience": "detected target audience",
    "vertical": "market vertical",
    "similarApps": ["similar apps mentioned or inferred"],
    "keyDifferentiator": "stated differentiator"
  },
  "reasoning": "short explanation of the classification"
}`

const adviseTemplate = `You are an expert in software architecture and system scaling.

PROJECT:
%q

DETECTED TYPE: %s (%s)
ESTIMATED USERS (MAU): %d

Based on this information, provide practical insights.

Answer ONLY with valid JSON (no markdown, no code fences):
{
  "insights": ["3-5 insights about the sizing"],
  "risks": ["2-3 technical risks to consider"],
  "recommendations": ["3-5 architecture recommendations"],
  "scalingConsiderations": ["2-3 points about future scaling"]
}`

type promptCategory struct {
	ID          benchmarks.Category `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Examples    []string            `json:"examples"`
}

type promptFeature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func classifyPrompt(catalog *benchmarks.Catalog, description string) (string, error) {
	var categories []promptCategory
	for _, b := range catalog.Benchmarks() {
		categories = append(categories, promptCategory{
			ID:          b.Category,
			Name:        b.Name,
			Description: b.Description,
			Examples:    b.RealWorldExamples,
		})
	}
	var features []promptFeature
	for _, f := range catalog.Features() {
		features = append(features, promptFeature{ID: f.ID, Name: f.Name, Description: f.Description})
	}

	catJSON, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return "", err
	}
	featJSON, err := json.MarshalIndent(features, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(classifyTemplate, description, catJSON, featJSON), nil
}

func advisePrompt(catalog *benchmarks.Catalog, description string, category benchmarks.Category, mau int64) string {
	name := string(category)
	if b, err := catalog.Lookup(category); err == nil {
		name = b.Name
	}
	return fmt.Sprintf(adviseTemplate, description, category, name, mau)
}

var fencePattern = regexp.MustCompile("```(?:json)?\\n?")

// cleanJSON strips markdown code fences the model adds despite the prompt
func cleanJSON(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}
