package artifact

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markers recognized inside java blocks.
var (
	MainClassMarkers = []string{"@SpringBootApplication"}
	TestMarkers      = []string{"@Test"}
)

const excerptLen = 120

// Classifier splits a generated document into project artifacts.
type Classifier struct {
	md  goldmark.Markdown
	log zerolog.Logger
}

// NewClassifier returns a Classifier that reports gaps to log.
func NewClassifier(log zerolog.Logger) *Classifier {
	return &Classifier{md: goldmark.New(), log: log}
}

// Classify walks the fenced code blocks of document in order and returns one
// artifact per classifiable block. Blocks that match no rule are returned as
// gaps and logged; they never stop classification.
func (c *Classifier) Classify(document string) ([]ProjectArtifact, []Gap) {
	src := []byte(document)
	root := c.md.Parser().Parse(text.NewReader(src))

	var artifacts []ProjectArtifact
	var gaps []Gap
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		info := blockInfo(block, src)
		code := blockLiteral(block, src)
		kind, ok := classifyBlock(info, code)
		if !ok {
			gap := Gap{Info: info, Excerpt: excerpt(code)}
			gaps = append(gaps, gap)
			c.log.Warn().Str("info", gap.Info).Str("excerpt", gap.Excerpt).Msg("could not classify fenced code block")
			return ast.WalkSkipChildren, nil
		}
		c.log.Debug().Str("kind", string(kind)).Str("info", info).Msg("classified fenced code block")
		artifacts = append(artifacts, ProjectArtifact{Kind: kind, Text: code})
		return ast.WalkSkipChildren, nil
	})
	return artifacts, gaps
}

// classifyBlock applies the tag rules first, then the content heuristics for
// untagged blocks.
func classifyBlock(info, code string) (Kind, bool) {
	if strings.TrimSpace(code) == "" {
		return "", false
	}
	switch {
	case strings.EqualFold(info, "java"):
		return classifyJava(code), true
	case strings.EqualFold(info, "xml"):
		return KindMavenDependencies, true
	case strings.TrimSpace(info) == "":
		if strings.Contains(code, "package") {
			return classifyJava(code), true
		}
		if strings.Contains(code, "<dependency>") {
			return KindMavenDependencies, true
		}
	}
	return "", false
}

func classifyJava(code string) Kind {
	if containsAny(code, MainClassMarkers) {
		return KindMainClass
	}
	if containsAny(code, TestMarkers) {
		return KindTestCode
	}
	return KindSourceCode
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func blockInfo(b *ast.FencedCodeBlock, src []byte) string {
	if b.Info == nil {
		return ""
	}
	return strings.TrimSpace(string(b.Info.Segment.Value(src)))
}

func blockLiteral(b *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := b.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

func excerpt(code string) string {
	code = strings.TrimSpace(code)
	if len(code) <= excerptLen {
		return code
	}
	return code[:excerptLen] + "..."
}
