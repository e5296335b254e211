package cmdtest

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// locateTestsNode accepts either a top-level sequence or a mapping with a "tests" sequence.
func locateTestsNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		val := findMapValue(doc, "tests")
		if val == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return val, nil
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Tag = "!!map"
		mapNode.Value = ""
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ""}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	// 单个换行用双引号，避免 go-yaml 写出空的 literal block
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	} else {
		node.Style = 0
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}

func summarizeValue(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
