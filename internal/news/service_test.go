package news

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	feed      *gofeed.Feed
	err       error
	parsedURL string
}

func (p *stubParser) ParseURLWithContext(feedURL string, ctx context.Context) (*gofeed.Feed, error) {
	p.parsedURL = feedURL
	if p.err != nil {
		return nil, p.err
	}
	return p.feed, nil
}

func feedWith(n int) *gofeed.Feed {
	published := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	feed := &gofeed.Feed{}
	for i := 0; i < n; i++ {
		feed.Items = append(feed.Items, &gofeed.Item{
			Title:           "금리 인하 <b>전망</b>",
			Link:            "https://news.example.com/article",
			Description:     "<p>시장은 <a href=\"#\">인하</a>를 기대한다</p>",
			PublishedParsed: &published,
		})
	}
	return feed
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("CapsAtTenItems", func(t *testing.T) {
		svc := NewService(&stubParser{feed: feedWith(25)})

		items, err := svc.Fetch(ctx, "")
		require.NoError(t, err)
		require.Len(t, items, 10)
	})

	t.Run("StripsHTML", func(t *testing.T) {
		svc := NewService(&stubParser{feed: feedWith(1)})

		items, err := svc.Fetch(ctx, "")
		require.NoError(t, err)
		require.Equal(t, "금리 인하 전망", items[0].Title)
		require.Equal(t, "시장은 인하를 기대한다", items[0].Summary)
	})

	t.Run("NormalizesDatesToKST", func(t *testing.T) {
		svc := NewService(&stubParser{feed: feedWith(1)})

		items, err := svc.Fetch(ctx, "")
		require.NoError(t, err)
		require.Equal(t, "2026-03-02", items[0].PublishedAt)
	})

	t.Run("KnownStockCodeChangesQuery", func(t *testing.T) {
		parser := &stubParser{feed: feedWith(1)}
		svc := NewService(parser)

		_, err := svc.Fetch(ctx, "005930")
		require.NoError(t, err)
		require.Contains(t, parser.parsedURL, url.QueryEscape("삼성전자 주가"))
	})

	t.Run("UnknownStockCodeFallsBackToGeneralQuery", func(t *testing.T) {
		parser := &stubParser{feed: feedWith(1)}
		svc := NewService(parser)

		_, err := svc.Fetch(ctx, "999999")
		require.NoError(t, err)
		require.Contains(t, parser.parsedURL, url.QueryEscape("경제 금융"))
	})

	t.Run("SkipsEmptyTitles", func(t *testing.T) {
		feed := feedWith(2)
		feed.Items[0].Title = ""
		svc := NewService(&stubParser{feed: feed})

		items, err := svc.Fetch(ctx, "")
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("ParserErrorSurfaces", func(t *testing.T) {
		svc := NewService(&stubParser{err: errors.New("dns failure")})

		_, err := svc.Fetch(ctx, "")
		require.Error(t, err)
	})
}
