package service

import (
	"strings"

	"github.com/popeskul/moments-broadcast/internal/models"
)

const (
	adminContentLimit = 100
	unsubscribeFooter = "Reply STOP to unsubscribe"
)

// DefaultRenderer formats moments as plain WhatsApp text.
type DefaultRenderer struct{}

func NewDefaultRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

func (DefaultRenderer) Render(moment *models.Moment) string {
	if moment.ContentSource == models.ContentSourceCommunity {
		return renderCommunity(moment)
	}
	return renderAdmin(moment)
}

func renderCommunity(moment *models.Moment) string {
	var b strings.Builder
	b.WriteString("Community Report - " + moment.Region + "\n")
	b.WriteString(moment.Title + "\n\n")
	b.WriteString("Shared by community member for awareness.\n")
	if moment.PWALink.Valid && moment.PWALink.String != "" {
		b.WriteString("Full details: " + moment.PWALink.String + "\n")
	}
	b.WriteString("\n" + unsubscribeFooter)
	return b.String()
}

func renderAdmin(moment *models.Moment) string {
	sponsor := ""
	if moment.IsSponsored && moment.SponsorName.Valid {
		sponsor = moment.SponsorName.String
	}

	var b strings.Builder
	if sponsor != "" {
		b.WriteString("Partner Content - " + moment.Region + "\n")
	} else {
		b.WriteString("Official Update - " + moment.Region + "\n")
	}

	b.WriteString(moment.Title + "\n")
	b.WriteString(truncateContent(moment.Content, adminContentLimit) + "\n")

	b.WriteString("\n" + moment.Category)
	if moment.Region != models.RegionNational {
		b.WriteString(" | " + moment.Region)
	}

	if sponsor != "" {
		b.WriteString("\n\nIn partnership with " + sponsor)
	}
	if moment.PWALink.Valid && moment.PWALink.String != "" {
		b.WriteString("\nMore: " + moment.PWALink.String)
	}

	b.WriteString("\n\n" + unsubscribeFooter)
	return b.String()
}

// truncateContent keeps content within limit runes, ending in "..." when cut.
func truncateContent(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit-3]) + "..."
}
