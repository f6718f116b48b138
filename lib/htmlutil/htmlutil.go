package htmlutil

import (
	"bytes"
	"net/url"
	"strings"

	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text recursively collects the text content of a node.
func Text(node *html.Node) string {
	var buffer bytes.Buffer
	textRecursive(node, &buffer)
	return buffer.String()
}

func textRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		textRecursive(child, buffer)
		child = child.NextSibling
	}
}

// CellText returns the cleaned text of a table cell with any
// "span.label" children excluded. Responsive roster tables duplicate
// the column header into such spans inside every cell, which would
// otherwise corrupt the value.
func CellText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find("span.label").Remove()
	return textutil.Clean(clone.Text())
}

// AbsoluteURL resolves href against the origin (scheme + host) of the
// team's base URL. Roster pages and profile pages can live under
// different paths on the same host, so resolution is never done
// against the roster page's own path.
func AbsoluteURL(origin, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	origin = strings.TrimSuffix(origin, "/")
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return origin + "/" + href
}

// Origin reduces a full URL to scheme://host, keeping any subdomain.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + u.Host, nil
}

// LabelledPair is one label/value element pair from a bio block.
type LabelledPair struct {
	Label string
	Value string
}

// LabelledPairs walks elements matching labelSel and pairs each with
// the text of its sibling matching valueSel, the pattern bio pages use
// for "Hometown" / "Class" style blocks.
func LabelledPairs(doc *goquery.Document, labelSel, valueSel string) []LabelledPair {
	var pairs []LabelledPair
	doc.Find(labelSel).Each(func(_ int, label *goquery.Selection) {
		parent := label.Parent()
		value := ""
		if valueSel != "" {
			sel := parent.Find(valueSel).First()
			if sel.Length() > 0 {
				value = sel.Text()
			}
		}
		if value == "" {
			// fall back to any sibling span that isn't the label itself
			parent.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
				if s.Nodes[0] == label.Nodes[0] {
					return true
				}
				value = Text(s.Nodes[0])
				return false
			})
		}
		if strings.TrimSpace(value) == "" {
			return
		}
		pairs = append(pairs, LabelledPair{
			Label: strings.ToLower(strings.TrimSpace(label.Text())),
			Value: strings.TrimSpace(value),
		})
	})
	return pairs
}

// SeasonOnPage reports whether an h1, h2 or title element mentions
// both the expected season token and the word "roster". Advisory
// only, a mismatch is logged by callers but never blocks extraction.
func SeasonOnPage(doc *goquery.Document, season string) bool {
	found := false
	doc.Find("h1, h2, title").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if strings.Contains(text, season) && strings.Contains(strings.ToLower(text), "roster") {
			found = true
			return false
		}
		return true
	})
	return found
}
