package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/source"
)

// ASTNodeOutput is the serialisable form of one syntax tree node, shared
// by the tree, JSON, YAML and msgpack dumps.
type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type" msgpack:"type"`
	Role     string          `json:"role,omitempty" yaml:"role,omitempty" msgpack:"role,omitempty"`
	Text     string          `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty"`
	Location *LocationJSON   `json:"location,omitempty" yaml:"location,omitempty" msgpack:"location,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
}

type astBuilder struct {
	fs *source.FileSet
}

// BuildASTOutput converts the tree rooted at n.
func BuildASTOutput(n ast.Node, fs *source.FileSet) ASTNodeOutput {
	b := astBuilder{fs: fs}
	return b.node(n, "")
}

func (b astBuilder) node(n ast.Node, role string) ASTNodeOutput {
	out := ASTNodeOutput{Role: role}
	if loc := n.Loc(); loc.File != nil {
		l := makeLocation(loc, b.fs, PathModeAuto)
		out.Location = &l
	}

	switch n := n.(type) {
	case *ast.Program:
		out.Type = "Program"
		for _, f := range n.Files {
			out.Children = append(out.Children, b.node(f, ""))
		}
	case *ast.File:
		out.Type = "File"
		d := Display{fs: b.fs}
		out.Text = d.displayName(n.Source)
		for _, it := range n.Items {
			out.Children = append(out.Children, b.node(it, ""))
		}
	case *ast.Import:
		out.Type = "Import"
		out.Text = n.Path.String()
	case *ast.Struct:
		out.Type = "Struct"
		out.Text = n.Name
		for _, g := range n.Generics {
			out.Children = append(out.Children, b.node(g, "generic"))
		}
		if n.Super != nil {
			out.Children = append(out.Children, b.node(n.Super, "super"))
		}
		for _, f := range n.Fields {
			out.Children = append(out.Children, b.node(f, ""))
		}
	case *ast.GenericParam:
		out.Type = "GenericParam"
		out.Text = n.Name
	case *ast.StructField:
		out.Type = "Field"
		out.Text = n.Name
		out.Children = append(out.Children, b.node(n.Type, "type"))
	case *ast.Function:
		out.Type = "Function"
		out.Text = n.Name
		for _, g := range n.Generics {
			out.Children = append(out.Children, b.node(g, "generic"))
		}
		for _, p := range n.Params {
			out.Children = append(out.Children, b.node(p, ""))
		}
		out.Children = append(out.Children, b.node(n.Return, "return"))
		out.Children = append(out.Children, b.node(n.Body, "body"))
	case *ast.Param:
		out.Type = "Param"
		out.Text = n.Name
		out.Children = append(out.Children, b.node(n.Type, "type"))
	case *ast.Name, *ast.Namespace:
		out.Type = "QualifiedName"
		out.Text = n.(ast.QualifiedName).String()
	case *ast.NameType:
		out.Type = "NameType"
		out.Text = n.Name.String()
	case *ast.FunctionType:
		out.Type = "FunctionType"
		for _, p := range n.Params {
			out.Children = append(out.Children, b.node(p, "param"))
		}
		out.Children = append(out.Children, b.node(n.Return, "return"))
	case *ast.ReferenceType:
		out.Type = "ReferenceType"
		out.Children = append(out.Children, b.node(n.Inner, ""))
	case *ast.ExprStmt:
		out.Type = "ExprStmt"
		out.Children = append(out.Children, b.node(n.X, ""))
	case *ast.ReturnStmt:
		out.Type = "ReturnStmt"
		out.Children = append(out.Children, b.node(n.Value, ""))
	case *ast.NameExpr:
		out.Type = "NameExpr"
		out.Text = n.Name.String()
	case *ast.IntegerExpr:
		out.Type = "IntegerExpr"
		out.Text = n.Text
	case *ast.Block:
		out.Type = "Block"
		for _, s := range n.Stmts {
			out.Children = append(out.Children, b.node(s, ""))
		}
	default:
		out.Type = fmt.Sprintf("%T", n)
	}
	return out
}

// FormatASTPretty печатает дерево:
//
//	File main.adze @1:1
//	└─ Struct Foo @1:1
//	   └─ Field x @1:14
//	      └─ type: NameType Int @1:17
func FormatASTPretty(w io.Writer, n ast.Node, fs *source.FileSet) error {
	var sb strings.Builder
	root := BuildASTOutput(n, fs)
	sb.WriteString(nodeLabel(root))
	sb.WriteByte('\n')
	writeChildren(&sb, root.Children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, children []ASTNodeOutput, prefix string) {
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + nodeLabel(c) + "\n")
		writeChildren(sb, c.Children, prefix+next)
	}
}

func nodeLabel(n ASTNodeOutput) string {
	var sb strings.Builder
	if n.Role != "" {
		sb.WriteString(n.Role + ": ")
	}
	sb.WriteString(n.Type)
	if n.Text != "" {
		sb.WriteString(" " + n.Text)
	}
	if n.Location != nil {
		fmt.Fprintf(&sb, " @%d:%d", n.Location.Line, n.Location.Col)
	}
	return sb.String()
}

func FormatASTJSON(w io.Writer, n ast.Node, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(n, fs))
}

func FormatASTYAML(w io.Writer, n ast.Node, fs *source.FileSet) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(BuildASTOutput(n, fs)); err != nil {
		return err
	}
	return encoder.Close()
}

func FormatASTMsgpack(w io.Writer, n ast.Node, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(BuildASTOutput(n, fs))
}
