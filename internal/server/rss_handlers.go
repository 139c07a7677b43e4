package server

import (
	"encoding/xml"
	"time"

	"survivalskills/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

const rssFeedLimit = 20

// RSSFeed handles GET /api/rss with the 20 most recent published posts.
func (s *Server) RSSFeed(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context(), repository.PostFilter{Limit: rssFeedLimit})
	if err != nil {
		return respondError(c, err)
	}

	base := s.config.SiteURL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := base + "/posts/" + p.Slug
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			PubDate:     p.PublishedAt.UTC().Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:         "Budget Survival Skills",
			Link:          base,
			Description:   "Expert tips for budget survival, emergency preparedness, and frugal living",
			Language:      "en-us",
			LastBuildDate: time.Now().UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	body, err := xml.Marshal(feed)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(xml.Header + string(body))
}
