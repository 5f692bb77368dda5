// Package compass provides an embedded Go client for the competitor-compass
// dashboard backend: projects own tracked competitors, competitors accumulate
// scraped page records, and a full-text search with saved queries runs over
// the page content.
//
// # Connecting and managing records
//
//	client, _ := compass.New(ctx, compass.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	project, _ := client.Projects().Create(ctx, "Acme Watch", "")
//	competitor, _ := client.Competitors().Create(ctx, project.ID,
//	    "Acme", "https://acme.example", "saas", "")
//	page, _ := client.Pages().Create(ctx, competitor.ID,
//	    "https://acme.example/pricing", map[string]string{"category": "Pricing"})
//
// # Searching
//
//	results, _ := client.Search().
//	    Query("pricing enterprise").
//	    Category("Pricing").
//	    Competitors(competitor.ID).
//	    Do(ctx)
//
// Crawling, scraping and AI summarization run in an external workflow engine;
// TriggerCrawl and TriggerScrape forward to its webhook (see
// WithWorkflowWebhook). The AI-led requirements interview needs an external
// provider plugged in with WithInterviewProvider.
package compass
