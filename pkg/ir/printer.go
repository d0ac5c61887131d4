package ir

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomlx/loopnest/internal/optypes"
	"github.com/pkg/errors"
)

var infixOperators = map[optypes.OpType]string{
	optypes.OpTypeAdd: " + ",
	optypes.OpTypeSub: " - ",
	optypes.OpTypeMul: "*",
	optypes.OpTypeDiv: "/",
	optypes.OpTypeMod: " % ",
	optypes.OpTypeEQ:  " == ",
	optypes.OpTypeNE:  " != ",
	optypes.OpTypeLT:  " < ",
	optypes.OpTypeLE:  " <= ",
	optypes.OpTypeGT:  " > ",
	optypes.OpTypeGE:  " >= ",
	optypes.OpTypeAnd: " && ",
	optypes.OpTypeOr:  " || ",
}

var callNames = map[optypes.OpType]string{
	optypes.OpTypeMin:               "min",
	optypes.OpTypeMax:               "max",
	optypes.OpTypeLikely:            "likely",
	optypes.OpTypeLikelyIfInnermost: "likely_if_innermost",
}

// Write writes the expression in its textual form to the given writer.
func (e *Expr) Write(w io.Writer) error {
	var err error
	write := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	writeOperand := func(operand *Expr) {
		if err != nil {
			return
		}
		err = operand.Write(w)
	}

	if e == nil {
		write("<undefined>")
		return err
	}
	switch e.OpType {
	case optypes.OpTypeConstant:
		write("%d", e.Value)
	case optypes.OpTypeBoolConstant:
		write("%t", e.Value != 0)
	case optypes.OpTypeVariable:
		write("%s", e.Name)
	case optypes.OpTypeNot:
		write("!")
		writeOperand(e.Operands[0])
	default:
		if op, found := infixOperators[e.OpType]; found {
			write("(")
			writeOperand(e.Operands[0])
			write("%s", op)
			writeOperand(e.Operands[1])
			write(")")
		} else if name, found := callNames[e.OpType]; found {
			write("%s(", name)
			for i, operand := range e.Operands {
				if i > 0 {
					write(", ")
				}
				writeOperand(operand)
			}
			write(")")
		} else {
			return errors.Errorf("cannot print expression with unknown op %s", e.OpType)
		}
	}
	return err
}

// String implements fmt.Stringer.
func (e *Expr) String() string {
	var sb strings.Builder
	if err := e.Write(&sb); err != nil {
		return fmt.Sprintf("<invalid expression: %v>", err)
	}
	return sb.String()
}
