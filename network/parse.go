// SPDX-License-Identifier: MIT

package network

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// reportLine matches one node record, singular or plural tunnel wording.
var reportLine = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

// ParseReport reads the line-oriented report format. Blank lines are skipped.
// A line that does not match yields ErrMalformedLine wrapped with its
// 1-based line number.
func ParseReport(r io.Reader) ([]Node, error) {
	var (
		nodes []Node
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m := reportLine.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("line %d: %w", line, ErrMalformedLine)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: rate %q: %w", line, m[2], ErrMalformedLine)
		}
		nodes = append(nodes, Node{
			Name:    m[1],
			Rate:    rate,
			Tunnels: splitTunnels(m[3]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	return nodes, nil
}

func splitTunnels(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// yamlDocument is the on-disk YAML shape.
type yamlDocument struct {
	Nodes []Node `yaml:"nodes"`
}

// ParseYAML decodes a `nodes:` document.
func ParseYAML(data []byte) ([]Node, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return doc.Nodes, nil
}

// Load reads path, picks a parser by extension (.yaml/.yml for YAML, the
// report format otherwise) and builds a Network.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network: %w", err)
	}

	var nodes []Node
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		nodes, err = ParseYAML(data)
	default:
		nodes, err = ParseReport(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, err
	}

	return New(nodes)
}
