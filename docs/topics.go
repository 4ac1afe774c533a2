// Package docs embeds the help topics of cfo.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Topic is an entry of the readme index.
type Topic struct {
	Name        string
	Description string
}

var topicLine = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Readme returns the documentation entry point.
func Readme() string {
	content, _ := files.ReadFile("readme.md")
	return string(content)
}

// Index returns the topics listed in the readme, in order.
func Index() []Topic {
	var topics []Topic
	scanner := bufio.NewScanner(strings.NewReader(Readme()))
	for scanner.Scan() {
		m := topicLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: strings.TrimSpace(m[2])})
	}
	return topics
}

// GetTopic returns the content of a documentation topic. The topic "*"
// stands for all of them.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(GetAllTopics()...)
	}
	content, err := files.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates multiple topics.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of all embedded topics.
func GetAllTopics() []string {
	entries, _ := fs.Glob(files, "*.md")
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(path.Base(e), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics
}
