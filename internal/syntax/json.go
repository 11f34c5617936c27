package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object = map[string]interface{}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return object{
			"type":     "Program",
			"pos":      n.pos.String(),
			"includes": mapSlice(n.Includes, func(d *Include) interface{} { return toJSON(d) }),
			"decls":    mapSlice(n.Decls, func(d Decl) interface{} { return toJSON(d) }),
		}

	case *Include:
		return object{
			"type":   "Include",
			"pos":    n.pos.String(),
			"path":   n.Path,
			"system": n.System,
		}

	case *FuncDecl:
		m := object{
			"type":   "FuncDecl",
			"pos":    n.pos.String(),
			"name":   n.Name.Value,
			"result": n.Result.String(),
			"params": mapSlice(n.Params, func(f *Param) interface{} {
				return object{"pos": f.pos.String(), "type": f.Type.String(), "name": f.Name.Value}
			}),
		}
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *VarDecl:
		return object{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"vartype": n.Type.String(),
			"vars": mapSlice(n.Vars, func(v *VarSpec) interface{} {
				m := object{"pos": v.pos.String(), "name": v.Name.Value}
				if v.Value != nil {
					m["value"] = toJSON(v.Value)
				}
				return m
			}),
		}

	case *BlockStmt:
		return object{
			"type":  "BlockStmt",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *DeclStmt:
		return toJSON(n.Decl)

	case *EmptyStmt:
		return object{"type": "EmptyStmt", "pos": n.pos.String()}

	case *ExprStmt:
		return object{"type": "ExprStmt", "pos": n.pos.String(), "x": toJSON(n.X)}

	case *IfStmt:
		m := object{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *WhileStmt:
		return object{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *ForStmt:
		m := object{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"body": toJSON(n.Body),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		return m

	case *ReturnStmt:
		m := object{"type": "ReturnStmt", "pos": n.pos.String()}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *Name:
		return object{"type": "Name", "pos": n.pos.String(), "value": n.Value}

	case *BasicLit:
		return object{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *ParenExpr:
		return object{"type": "ParenExpr", "pos": n.pos.String(), "x": toJSON(n.X)}

	case *UnaryExpr:
		return object{
			"type": "UnaryExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *BinaryExpr:
		return object{
			"type": "BinaryExpr",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *AssignExpr:
		return object{
			"type":   "AssignExpr",
			"pos":    n.pos.String(),
			"target": n.Target.Value,
			"value":  toJSON(n.Value),
		}

	case *CallExpr:
		return object{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}

	default:
		return object{"type": "Unknown"}
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
