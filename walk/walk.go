// Package walk provides depth-first traversal of parse trees.
package walk

import (
	"github.com/treebankio/treebank/ast"
)

// Nodes visits every node in the tree rooted at root in a pre-order
// traversal: a node before its children, children in order. The first
// error stops the traversal and is returned.
func Nodes(root *ast.Node, visit func(*ast.Node) error) error {
	return NodesEnterAndExit(root, visit, nil)
}

// NodesEnterAndExit visits every node in the tree rooted at root. The
// enter function is invoked before a node's children are visited, exit
// after. Either may be nil. The first error stops the traversal and is
// returned.
func NodesEnterAndExit(root *ast.Node, enter, exit func(*ast.Node) error) error {
	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}
	for _, child := range root.Children {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(root); err != nil {
			return err
		}
	}
	return nil
}

// Forest visits every node of every tree in f, trees in forest order.
func Forest(f *ast.Forest, visit func(*ast.Node) error) error {
	for _, tree := range f.Trees {
		if err := Nodes(tree, visit); err != nil {
			return err
		}
	}
	return nil
}
