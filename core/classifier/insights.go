package classifier

import (
	"fmt"
	"math"

	"capcost/core/benchmarks"
)

// FallbackInsights returns the deterministic insights for a category.
// Unknown categories get the generic ratios.
func FallbackInsights(catalog *benchmarks.Catalog, category benchmarks.Category) *Insights {
	name := string(category)
	readRatio, dauRatio := 0.7, 0.3
	if catalog != nil {
		if b, err := catalog.Lookup(category); err == nil {
			name = b.Name
			readRatio, dauRatio = b.ReadRatio, b.DAUMAURatio
		}
	}

	return &Insights{
		Insights: []string{
			fmt.Sprintf("%s apps typically serve %d%% reads", name, int(math.Round(readRatio*100))),
			fmt.Sprintf("The average DAU/MAU ratio is %d%%", int(math.Round(dauRatio*100))),
			"Consider aggressive caching to reduce database load",
		},
		Risks: []string{
			"Traffic spikes during special events can exceed the estimate",
			"Storage growth can accelerate as engagement increases",
		},
		Recommendations: []string{
			"Cache frequent queries with Redis or Valkey",
			"Serve static assets and media through a CDN",
			"Configure auto-scaling from the start",
		},
		ScalingConsiderations: []string{
			"Plan database sharding above 100GB",
			"Consider a microservice architecture above 10k req/s",
		},
	}
}
