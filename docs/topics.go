// Package docs embeds the fcs documentation topics.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Index is the topic listing all the others. It is shown by default and is
// not itself part of Topics.
const Index = "readme"

// Topic is one documentation page.
type Topic struct {
	Name  string // file name without the .md extension
	Title string // first heading of the page
}

// Topics returns the documentation topics, Index excluded, sorted by name.
func Topics() ([]Topic, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || e.IsDir() || name == Index {
			continue
		}
		title, err := readTitle(e.Name())
		if err != nil {
			return nil, err
		}
		topics = append(topics, Topic{Name: name, Title: title})
	}
	return topics, nil
}

// readTitle returns the text of the first markdown heading of file, or the
// file name when there is none.
func readTitle(file string) (string, error) {
	f, err := docs.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if title, ok := strings.CutPrefix(scanner.Text(), "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading topic %q: %w", file, err)
	}
	return strings.TrimSuffix(file, ".md"), nil
}

// GetAllTopics returns the names of Topics.
func GetAllTopics() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names, nil
}

// GetTopic returns the content of a topic. "*" returns every topic but the
// Index.
func GetTopic(name string) (string, error) {
	if name == "*" {
		names, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(names...)
	}
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// GetTopics returns the content of the topics, one after the other.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
