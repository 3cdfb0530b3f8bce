package workspace

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

type EnvTreeNode struct {
	Name     string
	Children []*EnvTreeNode
	File     string // relative path for files, empty for directories
}

func (n *EnvTreeNode) IsFile() bool { return n.File != "" }

// BuildEnvTree groups slash or OS separated relative paths into a directory
// tree. Within a directory files sort before subdirectories.
func BuildEnvTree(paths []string) *EnvTreeNode {
	root := &EnvTreeNode{Name: "."}

	for _, p := range paths {
		parts := strings.Split(filepath.ToSlash(p), "/")
		cur := root
		for _, dir := range parts[:len(parts)-1] {
			cur = cur.child(dir)
		}
		cur.Children = append(cur.Children, &EnvTreeNode{Name: parts[len(parts)-1], File: p})
	}

	SortEnvTree(root)
	return root
}

func (n *EnvTreeNode) child(name string) *EnvTreeNode {
	for _, ch := range n.Children {
		if ch.Name == name && !ch.IsFile() {
			return ch
		}
	}
	ch := &EnvTreeNode{Name: name}
	n.Children = append(n.Children, ch)
	return ch
}

func SortEnvTree(node *EnvTreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		ci, cj := node.Children[i], node.Children[j]
		if ci.IsFile() != cj.IsFile() {
			return ci.IsFile()
		}
		return ci.Name < cj.Name
	})

	for _, ch := range node.Children {
		SortEnvTree(ch)
	}
}

// PrintEnvTree writes the tree below node to w. annotate, when not nil, is
// called for every file and its result is appended to the file's line.
func PrintEnvTree(w io.Writer, node *EnvTreeNode, annotate func(file string) string) {
	for i, ch := range node.Children {
		printNode(w, ch, "", i == len(node.Children)-1, annotate)
	}
}

func printNode(w io.Writer, node *EnvTreeNode, prefix string, last bool, annotate func(string) string) {
	conn, childPrefix := "├─ ", prefix+"│  "
	if last {
		conn, childPrefix = "└─ ", prefix+"   "
	}

	line := prefix + conn + node.Name
	if node.IsFile() && annotate != nil {
		if note := annotate(node.File); note != "" {
			line += " " + note
		}
	}
	fmt.Fprintln(w, line)

	for i, ch := range node.Children {
		printNode(w, ch, childPrefix, i == len(node.Children)-1, annotate)
	}
}
