package email

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
	strict = bluemonday.StrictPolicy()
	policy = bluemonday.UGCPolicy()
)

// PlainText 去掉评论里的 HTML 标签
func PlainText(source string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(source)))
}

// RenderMarkdown markdown 转 HTML 并过滤
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return policy.Sanitize(source)
	}
	return policy.Sanitize(buf.String())
}

// NewReplyMessage 讨论有新回复时发给订阅者的邮件
func NewReplyMessage(to Address, authorName, discussionTitle, excerpt string) *Message {
	if authorName == "" {
		authorName = "Someone"
	}
	body := fmt.Sprintf("**%s** posted a new reply in the discussion **%s**:", authorName, discussionTitle)
	if excerpt != "" {
		body += "\n\n> " + strings.ReplaceAll(excerpt, "\n", "\n> ")
	}

	return &Message{
		To:      to,
		Subject: "New reply in discussion",
		Text:    fmt.Sprintf("%s posted a new reply in the discussion: %s\n\n%s", authorName, discussionTitle, excerpt),
		HTML:    RenderMarkdown(body),
	}
}
