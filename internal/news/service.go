package news

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	util "github.com/yeonjeyeong/economy-lingo/internal/utils"
)

const (
	maxItems     = 10
	defaultQuery = "경제 금융"
	feedURL      = "https://news.google.com/rss/search?q=%s&hl=ko&gl=KR&ceid=KR:ko"
)

// stockNames maps KRX ticker codes to the company names used as search terms.
var stockNames = map[string]string{
	"005930": "삼성전자",
	"005380": "현대차",
	"000660": "SK하이닉스",
	"035420": "NAVER",
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Source      string `json:"source,omitempty"`
	Summary     string `json:"summary,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Parser is the part of gofeed the service needs.
type Parser interface {
	ParseURLWithContext(feedURL string, ctx context.Context) (*gofeed.Feed, error)
}

type Service interface {
	Fetch(ctx context.Context, stockCode string) ([]Item, error)
}

type service struct {
	parser Parser
}

func NewService(parser Parser) Service {
	return &service{parser: parser}
}

func NewDefaultService() Service {
	return NewService(gofeed.NewParser())
}

// Fetch pulls the Google News RSS feed for the general economy query, or for
// a company when a known stock code is given. Unknown codes fall back to the
// general query.
func (s *service) Fetch(ctx context.Context, stockCode string) ([]Item, error) {
	query := defaultQuery
	if name, ok := stockNames[stockCode]; ok {
		query = name + " 주가"
	}

	feed, err := s.parser.ParseURLWithContext(
		strings.Replace(feedURL, "%s", url.QueryEscape(query), 1), ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, maxItems)
	for _, entry := range feed.Items {
		if len(items) >= maxItems {
			break
		}
		if entry == nil || entry.Title == "" {
			continue
		}

		item := Item{
			Title:   stripHTML(entry.Title),
			Link:    entry.Link,
			Summary: stripHTML(entry.Description),
		}
		if entry.PublishedParsed != nil {
			item.PublishedAt = util.FormatDate(*entry.PublishedParsed)
		}
		if len(entry.Authors) > 0 && entry.Authors[0] != nil {
			item.Source = entry.Authors[0].Name
		}
		items = append(items, item)
	}
	return items, nil
}

func stripHTML(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
