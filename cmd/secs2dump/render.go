package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-secs2/secs2"
)

func render(format string, item secs2.Item) (string, error) {
	switch format {
	case FormatSML:
		return item.ToSML(), nil
	case FormatYAML:
		return renderYAML(item)
	case FormatAddr:
		return renderAddr(item), nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// renderYAML renders item as a YAML document.
//
// Every item becomes a single-key mapping from its SML tag to its values, e.g.
// "U1: [1, 2]"; lists map "L" to the sequence of their elements.
func renderYAML(item secs2.Item) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)

	if err := enc.Encode(yamlNode(item)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func yamlNode(item secs2.Item) *yaml.Node {
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.FormatCode().String()}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{key, yamlValue(item)},
	}
}

func yamlValue(item secs2.Item) *yaml.Node {
	switch v := item.Values().(type) {
	case []secs2.Item:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range v {
			seq.Content = append(seq.Content, yamlNode(elem))
		}

		return seq
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle}
	case []byte:
		return flowSeq(v, "!!int", func(b byte) string { return fmt.Sprintf("0x%02X", b) })
	case []bool:
		return flowSeq(v, "!!bool", strconv.FormatBool)
	case []int64:
		return flowSeq(v, "!!int", func(n int64) string { return strconv.FormatInt(n, 10) })
	case []uint64:
		return flowSeq(v, "!!int", func(n uint64) string { return strconv.FormatUint(n, 10) })
	case []float64:
		bitSize := 64
		if item.IsFloat32() {
			bitSize = 32
		}

		return flowSeq(v, "!!float", func(f float64) string { return strconv.FormatFloat(f, 'g', -1, bitSize) })
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func flowSeq[T any](values []T, tag string, format func(T) string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range values {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: format(v)})
	}

	return seq
}

// renderAddr renders one "address: SML" line per element of a list item,
// sorted by address. Sublists are listed by their header only.
//
// Items that are not lists are rendered as "0: SML".
func renderAddr(item secs2.Item) string {
	list, ok := item.(*secs2.ListItem)
	if !ok {
		return "0: " + item.ToSML() + "\n"
	}

	flat := list.Flatten()
	addrs := make([]string, 0, len(flat))
	for addr := range flat {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, compareAddr)

	var sb strings.Builder
	for _, addr := range addrs {
		elem := flat[addr]
		sb.WriteString(addr)
		sb.WriteString(": ")
		if elem.IsList() {
			fmt.Fprintf(&sb, "<L[%d]>", elem.Size())
		} else {
			sb.WriteString(elem.ToSML())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// compareAddr orders dotted addresses segment by segment numerically, so "2"
// sorts before "10" and "3" before "3.1".
func compareAddr(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, _ := strconv.Atoi(as[i])
		bn, _ := strconv.Atoi(bs[i])
		if an != bn {
			return an - bn
		}
	}

	return len(as) - len(bs)
}
