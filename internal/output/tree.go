package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is the column descriptions are aligned to.
	descriptionColumn = 34
)

// TreeFile is one file shown in a rendered project tree.
type TreeFile struct {
	// Path is slash-separated and relative to the tree root.
	Path string

	// Description is shown muted next to the file (optional).
	Description string

	// Status is shown styled after the description (optional).
	Status string
}

type treeNode struct {
	name     string
	isDir    bool
	file     TreeFile
	children map[string]*treeNode
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &treeNode{name: name, isDir: isDir, children: map[string]*treeNode{}}
	n.children[name] = c
	return c
}

// sorted returns children with directories first, then alphabetically.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].isDir != out[j].isDir {
			return out[i].isDir
		}
		return out[i].name < out[j].name
	})
	return out
}

// RenderFileTree renders files as a tree rooted at rootName.
func RenderFileTree(rootName string, files []TreeFile) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true, children: map[string]*treeNode{}}
	for _, f := range files {
		parts := strings.Split(path.Clean(f.Path), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last)
			if last {
				current.file = f
			}
		}
	}

	styles := GetStyles()
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(rootName + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, root, "", styles)
	return sb.String()
}

func renderChildren(sb *strings.Builder, node *treeNode, prefix string, styles Styles) {
	children := node.sorted()
	for i, c := range children {
		last := i == len(children)-1

		connector, childPrefix := treeEdge, prefix+treeVert
		if last {
			connector, childPrefix = treeLast, prefix+treeSpace
		}

		name := c.name
		if c.isDir {
			name += "/"
		}
		line := prefix + connector + name

		if c.file.Description != "" || c.file.Status != "" {
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			if c.file.Description != "" {
				line += styles.Muted.Render(c.file.Description)
			}
			if c.file.Status != "" {
				if c.file.Description != "" {
					line += " "
				}
				line += StatusStyle(c.file.Status).Render(c.file.Status)
			}
		}

		sb.WriteString(line)
		sb.WriteString("\n")

		if c.isDir {
			renderChildren(sb, c, childPrefix, styles)
		}
	}
}

// TreeFilesFromPaths builds undecorated tree entries from paths.
func TreeFilesFromPaths(paths []string) []TreeFile {
	out := make([]TreeFile, 0, len(paths))
	for _, p := range paths {
		out = append(out, TreeFile{Path: p})
	}
	return out
}
