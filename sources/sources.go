// Package sources holds the registry of journal feeds the bot follows.
package sources

// Source pairs a journal's display name with its RSS/Atom feed URL. The
// name doubles as the key for per-journal abstract cleaning rules.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// defaults lists the followed journals in publish-priority order.
var defaults = []Source{
	{
		Name: "American Sociological Review (AoP)",
		URL:  "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=asra&type=axatoc&feed=rss",
	},
	{
		Name: "American Sociological Review",
		URL:  "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=asra&type=etoc&feed=rss",
	},
	{
		Name: "Annual Review of Sociology",
		URL:  "https://www.annualreviews.org/rss/content/journals/soc/latestarticles?fmt=rss",
	},
	{
		Name: "Socius",
		URL:  "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=srda&type=etoc&feed=rss",
	},
	{
		Name: "Social Forces",
		URL:  "https://academic.oup.com/rss/site_5513/3374.xml",
	},
	// AJS feed carries no abstracts; entries fail the length filter until
	// the journal fixes its feed.
	{
		Name: "American Journal of Sociology",
		URL:  "https://www.journals.uchicago.edu/action/showFeed?type=etoc&feed=rss&jc=ajs",
	},
	{
		Name: "SocArXiv",
		URL:  "https://share.osf.io/api/v2/feeds/atom/?elasticQuery=%7B%22bool%22%3A%7B%22must%22%3A%7B%22query_string%22%3A%7B%22query%22%3A%22*%22%7D%7D%2C%22filter%22%3A%5B%7B%22term%22%3A%7B%22sources%22%3A%22SocArXiv%22%7D%7D%5D%7D%7D",
	},
	{
		Name: "Sociological Science",
		URL:  "https://sociologicalscience.com/category/articles/feed/",
	},
	{
		Name: "Sociological Methods and Research",
		URL:  "https://journals.sagepub.com/action/showFeed?ui=0&mi=ehikzz&ai=2b4&jc=smra&type=etoc&feed=rss",
	},
	{
		Name: "European Sociological Review",
		URL:  "https://academic.oup.com/rss/site_5160/advanceAccess_3023.xml",
	},
}

// Defaults returns a copy of the built-in journal list so callers and tests
// can substitute their own set without touching the registry.
func Defaults() []Source {
	out := make([]Source, len(defaults))
	copy(out, defaults)
	return out
}
