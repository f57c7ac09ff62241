package benchmarks

// Sources: S-1 filings, OpenView and ChartMogul reports, public company data.
var defaultBenchmarks = []Benchmark{
	{
		Category:    CategoryContentPlatform,
		Name:        "Content Platform",
		Description: "Blogs, news portals, article platforms (Medium, Dev.to, StackOverflow)",

		ReadRatio:      0.85,
		DAUMAURatio:    0.25,
		PeakMultiplier: 3,

		AvgRequestsPerDAU:      45,
		AvgSessionMinutes:      8,
		AvgSessionsPerDay:      1.5,
		AvgPageViewsPerSession: 6,

		AvgPageSizeKB:           150,
		StoragePerUserMB:        0.5,
		StoragePerContentItemMB: 0.05,
		AvgContentItemsPerUser:  3,

		TypicalFeatures:   []string{"auth", "rich-text-editor", "comments", "search", "notifications", "bookmarks"},
		RealWorldExamples: []string{"Medium", "Dev.to", "Hashnode", "Substack"},
		DataSource:        "Medium S-1 analysis, public Dev.to data",
	},
	{
		Category:    CategoryMarketplace,
		Name:        "Marketplace",
		Description: "Buy/sell, rental and services platforms (Airbnb, MercadoLivre, Uber)",

		ReadRatio:      0.70,
		DAUMAURatio:    0.15,
		PeakMultiplier: 5,

		AvgRequestsPerDAU:      120,
		AvgSessionMinutes:      12,
		AvgSessionsPerDay:      2,
		AvgPageViewsPerSession: 15,

		AvgPageSizeKB:           300,
		StoragePerUserMB:        5,
		StoragePerContentItemMB: 2,
		AvgContentItemsPerUser:  5,

		TypicalFeatures:   []string{"auth", "search", "geo-location", "payments", "reviews", "chat", "notifications", "media-upload"},
		RealWorldExamples: []string{"Airbnb", "MercadoLivre", "OLX", "GetNinjas"},
		DataSource:        "Airbnb S-1, Marketplace Pulse reports",
	},
	{
		Category:    CategorySaaSB2B,
		Name:        "SaaS B2B",
		Description: "Productivity, collaboration and management tools (Notion, Slack, Asana)",

		ReadRatio:      0.60,
		DAUMAURatio:    0.60,
		PeakMultiplier: 2,

		AvgRequestsPerDAU:      200,
		AvgSessionMinutes:      45,
		AvgSessionsPerDay:      3,
		AvgPageViewsPerSession: 25,

		AvgPageSizeKB:           200,
		StoragePerUserMB:        50,
		StoragePerContentItemMB: 0.5,
		AvgContentItemsPerUser:  100,

		TypicalFeatures:   []string{"auth", "workspaces", "collaboration", "real-time", "rich-text-editor", "file-upload", "integrations", "api"},
		RealWorldExamples: []string{"Notion", "Slack", "Asana", "Linear", "Figma"},
		DataSource:        "Asana/Slack S-1, OpenView SaaS Benchmarks 2024",
	},
	{
		Category:    CategorySaaSB2C,
		Name:        "SaaS B2C",
		Description: "Personal productivity, finance and wellness apps (Todoist, YNAB, Headspace)",

		ReadRatio:      0.65,
		DAUMAURatio:    0.35,
		PeakMultiplier: 2.5,

		AvgRequestsPerDAU:      80,
		AvgSessionMinutes:      15,
		AvgSessionsPerDay:      2,
		AvgPageViewsPerSession: 10,

		AvgPageSizeKB:           120,
		StoragePerUserMB:        10,
		StoragePerContentItemMB: 0.1,
		AvgContentItemsPerUser:  50,

		TypicalFeatures:   []string{"auth", "sync", "offline", "push-notifications", "reminders", "analytics"},
		RealWorldExamples: []string{"Todoist", "YNAB", "Headspace", "Duolingo"},
		DataSource:        "ChartMogul reports, public data",
	},
	{
		Category:    CategoryECommerce,
		Name:        "E-commerce",
		Description: "Online stores, D2C brands, online retail",

		ReadRatio:      0.90,
		DAUMAURatio:    0.10,
		PeakMultiplier: 10, // Black Friday, promotions

		AvgRequestsPerDAU:      60,
		AvgSessionMinutes:      8,
		AvgSessionsPerDay:      1.2,
		AvgPageViewsPerSession: 12,

		AvgPageSizeKB:           400, // image heavy
		StoragePerUserMB:        1,
		StoragePerContentItemMB: 3, // products with several photos
		AvgContentItemsPerUser:  0, // shoppers do not create content

		TypicalFeatures:   []string{"auth", "search", "cart", "payments", "inventory", "shipping", "reviews", "recommendations"},
		RealWorldExamples: []string{"Shopify stores", "VTEX", "Magento"},
		DataSource:        "Shopify Partner benchmarks, NRF data",
	},
	{
		Category:    CategorySocialNetwork,
		Name:        "Social Network",
		Description: "Social platforms, communities, forums",

		ReadRatio:      0.75,
		DAUMAURatio:    0.50,
		PeakMultiplier: 3,

		AvgRequestsPerDAU:      150,
		AvgSessionMinutes:      25,
		AvgSessionsPerDay:      5,
		AvgPageViewsPerSession: 20,

		AvgPageSizeKB:           250,
		StoragePerUserMB:        20, // photos, posts
		StoragePerContentItemMB: 0.3,
		AvgContentItemsPerUser:  50,

		TypicalFeatures:   []string{"auth", "feed", "posts", "media-upload", "likes", "comments", "follow", "notifications", "chat", "stories"},
		RealWorldExamples: []string{"Instagram", "Twitter/X", "Discord", "Reddit"},
		DataSource:        "Historical Meta S-1, Twitter S-1",
	},
	{
		Category:    CategoryFintech,
		Name:        "Fintech",
		Description: "Payments, banking and investment apps",

		ReadRatio:      0.70,
		DAUMAURatio:    0.40,
		PeakMultiplier: 4,

		AvgRequestsPerDAU:      50,
		AvgSessionMinutes:      5,
		AvgSessionsPerDay:      2,
		AvgPageViewsPerSession: 8,

		AvgPageSizeKB:           80, // light, data focused
		StoragePerUserMB:        2,
		StoragePerContentItemMB: 0.01, // transactions
		AvgContentItemsPerUser:  200,

		TypicalFeatures:   []string{"auth", "kyc", "2fa", "payments", "transfers", "balance", "statements", "notifications", "security"},
		RealWorldExamples: []string{"Nubank", "PicPay", "Stripe Dashboard", "Wise"},
		DataSource:        "Nubank S-1, CB Insights Fintech reports",
	},
	{
		Category:    CategoryEdtech,
		Name:        "EdTech",
		Description: "Learning platforms, courses, LMS",

		ReadRatio:      0.80,
		DAUMAURatio:    0.30,
		PeakMultiplier: 3,

		AvgRequestsPerDAU:      100,
		AvgSessionMinutes:      30,
		AvgSessionsPerDay:      1.5,
		AvgPageViewsPerSession: 15,

		AvgPageSizeKB:           500, // videos, course material
		StoragePerUserMB:        5,
		StoragePerContentItemMB: 50, // video is heavy
		AvgContentItemsPerUser:  2,

		TypicalFeatures:   []string{"auth", "video-streaming", "progress-tracking", "quizzes", "certificates", "forums", "live-classes"},
		RealWorldExamples: []string{"Coursera", "Udemy", "Hotmart", "Alura"},
		DataSource:        "Coursera S-1, Udemy S-1",
	},
	{
		Category:    CategoryHealthtech,
		Name:        "HealthTech",
		Description: "Health, telemedicine and fitness apps",

		ReadRatio:      0.65,
		DAUMAURatio:    0.35,
		PeakMultiplier: 2,

		AvgRequestsPerDAU:      40,
		AvgSessionMinutes:      10,
		AvgSessionsPerDay:      1.5,
		AvgPageViewsPerSession: 8,

		AvgPageSizeKB:           150,
		StoragePerUserMB:        15, // medical history, exams
		StoragePerContentItemMB: 2,
		AvgContentItemsPerUser:  20,

		TypicalFeatures:   []string{"auth", "hipaa-compliance", "appointments", "video-calls", "medical-records", "prescriptions", "reminders"},
		RealWorldExamples: []string{"Teladoc", "Doctolib", "Conexa Saúde"},
		DataSource:        "Teladoc S-1, Rock Health reports",
	},
	{
		Category:    CategoryDeveloperTools,
		Name:        "Developer Tools",
		Description: "Tools for developers, APIs, infrastructure",

		ReadRatio:      0.50,
		DAUMAURatio:    0.55,
		PeakMultiplier: 2,

		AvgRequestsPerDAU:      500, // APIs are called constantly
		AvgSessionMinutes:      60,
		AvgSessionsPerDay:      4,
		AvgPageViewsPerSession: 30,

		AvgPageSizeKB:           50,  // small JSON responses
		StoragePerUserMB:        100, // logs, builds, artifacts
		StoragePerContentItemMB: 5,
		AvgContentItemsPerUser:  50,

		TypicalFeatures:   []string{"auth", "api-keys", "webhooks", "logs", "analytics", "cli", "sdks", "documentation"},
		RealWorldExamples: []string{"Vercel", "Supabase", "PlanetScale", "Railway"},
		DataSource:        "Vercel usage analysis, Supabase docs",
	},
}

// Features that can be added to any category
var defaultFeatures = []Feature{
	{
		ID:                "auth",
		Name:              "Authentication",
		Description:       "Login, sign-up, password recovery",
		ImpactOnRequests:  1.1,
		ImpactOnStorage:   1.05,
		ImpactOnBandwidth: 1.0,
	},
	{
		ID:                "real-time",
		Name:              "Real-time",
		Description:       "WebSockets, live updates",
		ImpactOnRequests:  2.0,
		ImpactOnStorage:   1.1,
		ImpactOnBandwidth: 1.5,
		RequiresRealtime:  true,
	},
	{
		ID:                  "media-upload",
		Name:                "Media Upload",
		Description:         "Image, video and file uploads",
		ImpactOnRequests:    1.2,
		ImpactOnStorage:     3.0,
		ImpactOnBandwidth:   2.5,
		RequiresMediaUpload: true,
	},
	{
		ID:                "search",
		Name:              "Search",
		Description:       "Full-text search, filters",
		ImpactOnRequests:  1.3,
		ImpactOnStorage:   1.2,
		ImpactOnBandwidth: 1.1,
	},
	{
		ID:                "notifications",
		Name:              "Notifications",
		Description:       "Push, email, in-app",
		ImpactOnRequests:  1.15,
		ImpactOnStorage:   1.1,
		ImpactOnBandwidth: 1.05,
	},
	{
		ID:                "chat",
		Name:              "Chat/Messaging",
		Description:       "Messages between users",
		ImpactOnRequests:  1.5,
		ImpactOnStorage:   1.3,
		ImpactOnBandwidth: 1.2,
		RequiresRealtime:  true,
	},
	{
		ID:                "payments",
		Name:              "Payments",
		Description:       "Payment gateway integration",
		ImpactOnRequests:  1.1,
		ImpactOnStorage:   1.1,
		ImpactOnBandwidth: 1.0,
	},
	{
		ID:                "analytics",
		Name:              "Analytics",
		Description:       "Event tracking, dashboards",
		ImpactOnRequests:  1.2,
		ImpactOnStorage:   1.5,
		ImpactOnBandwidth: 1.1,
	},
	{
		ID:                  "video-streaming",
		Name:                "Video Streaming",
		Description:         "Video player, HLS/DASH",
		ImpactOnRequests:    1.3,
		ImpactOnStorage:     5.0,
		ImpactOnBandwidth:   10.0,
		RequiresMediaUpload: true,
	},
	{
		ID:                "geo-location",
		Name:              "Geolocation",
		Description:       "Maps, proximity search",
		ImpactOnRequests:  1.2,
		ImpactOnStorage:   1.1,
		ImpactOnBandwidth: 1.3,
	},
	{
		ID:                "api",
		Name:              "Public API",
		Description:       "API for external integrations",
		ImpactOnRequests:  1.5,
		ImpactOnStorage:   1.2,
		ImpactOnBandwidth: 1.3,
	},
	{
		ID:                "collaboration",
		Name:              "Collaboration",
		Description:       "Collaborative editing, workspaces",
		ImpactOnRequests:  1.8,
		ImpactOnStorage:   1.3,
		ImpactOnBandwidth: 1.4,
		RequiresRealtime:  true,
	},
}

var defaultRegions = []RegionProfile{
	{
		Region:                  RegionBrazil,
		PeakHours:               HourWindow{Start: 19, End: 23},
		Timezone:                "America/Sao_Paulo",
		BandwidthCostMultiplier: 1.2,
		Latency:                 "medium",
	},
	{
		Region:                  RegionLatam,
		PeakHours:               HourWindow{Start: 19, End: 23},
		Timezone:                "America/Sao_Paulo",
		BandwidthCostMultiplier: 1.3,
		Latency:                 "medium",
	},
	{
		Region:                  RegionUS,
		PeakHours:               HourWindow{Start: 18, End: 22},
		Timezone:                "America/New_York",
		BandwidthCostMultiplier: 1.0,
		Latency:                 "low",
	},
	{
		Region:                  RegionEurope,
		PeakHours:               HourWindow{Start: 19, End: 23},
		Timezone:                "Europe/London",
		BandwidthCostMultiplier: 1.1,
		Latency:                 "low",
	},
	{
		Region:                  RegionGlobal,
		PeakHours:               HourWindow{Start: 0, End: 24}, // always peak somewhere
		Timezone:                "UTC",
		BandwidthCostMultiplier: 1.0,
		Latency:                 "high", // needs CDN/edge
	},
}
