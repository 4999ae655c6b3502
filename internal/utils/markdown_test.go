package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownBasics(t *testing.T) {
	out := RenderMarkdown("some *emphasis* here")
	assert.Contains(t, out, "<em>emphasis</em>")

	out = RenderMarkdown("# Heading")
	assert.Contains(t, out, "<h1")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := RenderMarkdown(`hello <script>alert("xss")</script>`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestRenderMarkdownAutolinkTargets(t *testing.T) {
	out := RenderMarkdown("see https://example.com/docs")
	assert.Contains(t, out, `href="https://example.com/docs"`)
	assert.Contains(t, out, `target="_blank"`)
}
