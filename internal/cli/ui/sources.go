package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss/tree"
)

// labelKeys are tried in order for a citation's heading
var labelKeys = []string{"title", "name", "source", "document", "url", "id"}

// RenderSources draws backend citations as a tree. Citations have no fixed
// shape: each one is labelled by its first known label key and its remaining
// fields are listed sorted by key.
func RenderSources(sources []map[string]interface{}) string {
	if len(sources) == 0 {
		return ""
	}

	root := tree.Root(Styles.Heading.Render("Sources"))
	for i, src := range sources {
		root.Child(buildSourceNode(i+1, src))
	}
	return root.String()
}

func buildSourceNode(n int, src map[string]interface{}) *tree.Tree {
	label, labelKey := fmt.Sprintf("Source %d", n), ""
	for _, k := range labelKeys {
		if v, ok := src[k]; ok && fmt.Sprint(v) != "" {
			label, labelKey = fmt.Sprint(v), k
			break
		}
	}

	node := tree.Root(Styles.Source.Render(fmt.Sprintf("[%d] %s", n, label)))

	keys := make([]string, 0, len(src))
	for k := range src {
		if k != labelKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.Child(formatKeyValue(k, fmt.Sprint(src[k])))
	}
	return node
}

// formatKeyValue formats a key-value pair with styling
func formatKeyValue(key, value string) string {
	return Styles.Key.Render(key+":") + " " + Styles.Value.Render(value)
}
