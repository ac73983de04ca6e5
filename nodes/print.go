package nodes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/exprs/values"
)

// String renders node back as expression source.
func String(node Node) string {
	var sb strings.Builder
	write(&sb, node, false)
	return sb.String()
}

func write(sb *strings.Builder, node Node, nested bool) {
	switch node := node.(type) {

	case *Literal:
		sb.WriteString(literalText(node.Value))

	case *Var:
		sb.WriteString(node.Name)

	case *Add:
		// + is left associative, so only a right hand sum needs parentheses
		if nested {
			sb.WriteString("(")
		}
		write(sb, node.Left, false)
		sb.WriteString(" + ")
		_, rightIsSum := node.Right.(*Add)
		write(sb, node.Right, rightIsSum)
		if nested {
			sb.WriteString(")")
		}

	default:
		fmt.Fprintf(sb, "<%T>", node)

	}
}

func literalText(v values.Value) string {
	switch v := v.(type) {
	case nil, values.Null:
		return "null"
	case values.String:
		return strconv.Quote(string(v))
	case values.Bool:
		return strconv.FormatBool(bool(v))
	}
	text, err := values.Text(v)
	if err != nil {
		return values.Format(v)
	}
	return text
}
